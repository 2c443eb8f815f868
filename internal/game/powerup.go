package game

// Powerup identifies a purchasable in-level effect.
type Powerup string

const (
	PowerupHint    Powerup = "hint"
	PowerupSkip    Powerup = "skip"
	PowerupRestore Powerup = "restore"
	PowerupFreeze  Powerup = "freeze"
)

// AllPowerups returns every powerup in display order.
func AllPowerups() []Powerup {
	return []Powerup{PowerupHint, PowerupSkip, PowerupRestore, PowerupFreeze}
}

// Cost returns the coin price of the powerup.
func (p Powerup) Cost() int {
	switch p {
	case PowerupHint:
		return 10
	case PowerupSkip:
		return 25
	case PowerupRestore:
		return 50
	case PowerupFreeze:
		return 30
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the powerup.
func (p Powerup) DisplayName() string {
	switch p {
	case PowerupHint:
		return "Hint"
	case PowerupSkip:
		return "Skip"
	case PowerupRestore:
		return "Health"
	case PowerupFreeze:
		return "Freeze"
	default:
		return string(p)
	}
}
