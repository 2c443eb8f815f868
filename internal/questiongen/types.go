package questiongen

// Question is a generated quiz question ready for display.
type Question struct {
	// Text is the question prompt, e.g. "What is 12 × 7?".
	Text string

	// Answer is the canonical correct answer as a string.
	// Numeric ("84"), unreduced fraction ("7/12"), or symbolic ("3x^2").
	Answer string

	// Options holds exactly 4 distinct choices, one of which equals Answer.
	// Order is shuffled.
	Options []string

	// Explanation is a short category-level solution note shown after answering.
	Explanation string

	// Category is the question category the generator dispatched to.
	Category Category

	// Difficulty is the band name attached to the question ("Easy".."Master").
	Difficulty string

	// TimeLimit is the countdown in seconds for this question.
	TimeLimit int
}

// Category identifies a question category.
type Category string

const (
	CategoryArithmetic  Category = "arithmetic"
	CategoryAlgebra     Category = "algebra"
	CategoryGeometry    Category = "geometry"
	CategoryFractions   Category = "fractions"
	CategorySequences   Category = "sequences"
	CategoryProbability Category = "probability"
	CategoryCalculus    Category = "calculus"
	CategoryWordProblem Category = "word_problem"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryArithmetic,
		CategoryFractions,
		CategoryAlgebra,
		CategoryGeometry,
		CategorySequences,
		CategoryProbability,
		CategoryWordProblem,
		CategoryCalculus,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryArithmetic:
		return "Arithmetic"
	case CategoryAlgebra:
		return "Algebra"
	case CategoryGeometry:
		return "Geometry"
	case CategoryFractions:
		return "Fractions"
	case CategorySequences:
		return "Sequences"
	case CategoryProbability:
		return "Probability"
	case CategoryCalculus:
		return "Calculus"
	case CategoryWordProblem:
		return "Word Problem"
	default:
		return string(c)
	}
}
