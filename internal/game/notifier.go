package game

// Notifier receives gameplay side effects. The session never renders
// anything itself; the UI collaborator implements this.
type Notifier interface {
	// Combo fires on every streak multiple of 5.
	Combo(streak int)

	// Roast delivers a taunt after a wrong answer that did not end the game.
	Roast(message string)

	// PowerupEffect fires when a powerup purchase succeeds.
	PowerupEffect(kind Powerup)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Combo(int)             {}
func (NopNotifier) Roast(string)          {}
func (NopNotifier) PowerupEffect(Powerup) {}
