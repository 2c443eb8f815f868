package questiongen

// Band is a difficulty tier with its display color and per-question time limit.
type Band struct {
	Name      string
	Color     string // hex color token for the UI
	TimeLimit int    // seconds
}

// bands is the static band table, indexed 1-5.
var bands = map[int]Band{
	1: {Name: "Easy", Color: "#00ff7f", TimeLimit: 30},
	2: {Name: "Medium", Color: "#ffaa00", TimeLimit: 25},
	3: {Name: "Hard", Color: "#ff4444", TimeLimit: 20},
	4: {Name: "Expert", Color: "#cc00ff", TimeLimit: 15},
	5: {Name: "Master", Color: "#ff0066", TimeLimit: 10},
}

// BandFor maps a level to its difficulty band.
// Breakpoints: ≤5, ≤15, ≤30, ≤50, else.
func BandFor(level int) Band {
	switch {
	case level <= 5:
		return bands[1]
	case level <= 15:
		return bands[2]
	case level <= 30:
		return bands[3]
	case level <= 50:
		return bands[4]
	default:
		return bands[5]
	}
}

// CategoriesFor returns the category pool the generator draws from at a level.
// The breakpoints and sets are an enumerated step function, not a formula.
func CategoriesFor(level int) []Category {
	switch {
	case level <= 5:
		return []Category{CategoryArithmetic}
	case level <= 10:
		return []Category{CategoryArithmetic, CategoryFractions}
	case level <= 20:
		return []Category{CategoryArithmetic, CategoryAlgebra, CategoryGeometry, CategoryFractions}
	case level <= 35:
		return []Category{CategoryAlgebra, CategoryGeometry, CategorySequences, CategoryProbability}
	case level <= 50:
		return []Category{CategoryAlgebra, CategoryGeometry, CategorySequences, CategoryProbability, CategoryWordProblem}
	default:
		return []Category{CategoryAlgebra, CategoryGeometry, CategorySequences, CategoryProbability, CategoryWordProblem, CategoryCalculus}
	}
}

// Multiplier returns the score multiplier for a band name.
func Multiplier(bandName string) float64 {
	switch bandName {
	case "Easy":
		return 1
	case "Medium":
		return 1.2
	case "Hard":
		return 1.5
	case "Expert":
		return 2
	case "Master":
		return 3
	default:
		return 1
	}
}
