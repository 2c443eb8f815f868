package questiongen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Generator produces quiz questions for a level. All randomness flows
// through a single injected source so tests can fix sequences.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate builds a question for the given level: band and category pool
// come from the difficulty policy, one category is picked uniformly,
// then 3 distractors are synthesized around the canonical answer.
func (g *Generator) Generate(level int) Question {
	band := BandFor(level)
	pool := CategoriesFor(level)
	category := pool[g.rng.IntN(len(pool))]

	var text, answer string
	switch category {
	case CategoryArithmetic:
		text, answer = g.arithmetic(level)
	case CategoryAlgebra:
		text, answer = g.algebra(level)
	case CategoryGeometry:
		text, answer = g.geometry(level)
	case CategoryFractions:
		text, answer = g.fractions(level)
	case CategorySequences:
		text, answer = g.sequence(level)
	case CategoryProbability:
		text, answer = g.probability(level)
	case CategoryCalculus:
		text, answer = g.calculus(level)
	case CategoryWordProblem:
		text, answer = g.wordProblem(level)
	default:
		text, answer = g.arithmetic(level)
		category = CategoryArithmetic
	}

	return Question{
		Text:        text,
		Answer:      answer,
		Options:     g.options(answer, level),
		Explanation: explanations[category],
		Category:    category,
		Difficulty:  band.Name,
		TimeLimit:   band.TimeLimit,
	}
}

// arithmetic picks an operator uniformly; operand bounds grow with level.
// Division is constructed divisor-first so it is always exact, and
// subtraction samples the minuend above the subtrahend.
func (g *Generator) arithmetic(level int) (string, string) {
	switch g.rng.IntN(4) {
	case 0:
		a := g.randInt(1, 10+level*3)
		b := g.randInt(1, 10+level*3)
		return fmt.Sprintf("What is %d + %d?", a, b), itoa(a + b)
	case 1:
		a := g.randInt(10+level*2, 20+level*4)
		b := g.randInt(1, a-1)
		return fmt.Sprintf("What is %d - %d?", a, b), itoa(a - b)
	case 2:
		a := g.randInt(1, 5+level/2)
		b := g.randInt(1, 5+level/2)
		return fmt.Sprintf("What is %d × %d?", a, b), itoa(a * b)
	default:
		b := g.randInt(2, 5+level/3)
		a := b * g.randInt(2, 5+level/2)
		return fmt.Sprintf("What is %d ÷ %d?", a, b), itoa(a / b)
	}
}

// algebra serves the linear tier below level 15 and quadratics above.
// A negative discriminant retries at level 5 to stay in the linear tier.
func (g *Generator) algebra(level int) (string, string) {
	if level/15 == 0 {
		x := g.randInt(1, 10+level)
		coeff := g.randInt(2, 5+level/5)
		constant := g.randInt(1, 10+level)
		text := fmt.Sprintf("If %dx + %d = %d, what is x?", coeff, constant, coeff*x+constant)
		return text, itoa(x)
	}

	b := g.randInt(-10, 10)
	c := g.randInt(-20, 20)
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return g.algebra(5)
	}
	root := (float64(-b) + math.Sqrt(float64(discriminant))) / 2
	text := fmt.Sprintf("Solve: x² + %dx + %d = 0. What is the positive solution?", b, c)
	return text, itoa(int(math.Round(root)))
}

func (g *Generator) geometry(level int) (string, string) {
	switch g.rng.IntN(4) {
	case 0:
		side := g.randInt(3, 10+level)
		return fmt.Sprintf("What is the area of a square with side length %d?", side),
			itoa(side * side)
	case 1:
		length := g.randInt(4, 12+level)
		width := g.randInt(3, 8+level)
		return fmt.Sprintf("What is the area of a rectangle with length %d and width %d?", length, width),
			itoa(length * width)
	case 2:
		base := g.randInt(5, 15+level)
		height := g.randInt(4, 12+level)
		return fmt.Sprintf("What is the area of a triangle with base %d and height %d?", base, height),
			itoa(int(math.Round(float64(base*height) / 2)))
	default:
		radius := g.randInt(2, 8+level/3)
		return fmt.Sprintf("What is the area of a circle with radius %d? (Use π=3.14)", radius),
			itoa(int(math.Round(3.14 * float64(radius*radius))))
	}
}

// fractions presents sums and differences over the LCM without reducing.
// Division cross-multiplies with no validity checks on the result.
func (g *Generator) fractions(level int) (string, string) {
	num1 := g.randInt(1, 5+level/2)
	den1 := g.randInt(2, 6+level/2)
	num2 := g.randInt(1, 5+level/2)
	den2 := g.randInt(2, 6+level/2)

	switch g.rng.IntN(4) {
	case 0:
		l := lcm(den1, den2)
		return fmt.Sprintf("What is %d/%d + %d/%d?", num1, den1, num2, den2),
			fmt.Sprintf("%d/%d", num1*(l/den1)+num2*(l/den2), l)
	case 1:
		l := lcm(den1, den2)
		return fmt.Sprintf("What is %d/%d - %d/%d?", num1, den1, num2, den2),
			fmt.Sprintf("%d/%d", num1*(l/den1)-num2*(l/den2), l)
	case 2:
		return fmt.Sprintf("What is %d/%d × %d/%d?", num1, den1, num2, den2),
			fmt.Sprintf("%d/%d", num1*num2, den1*den2)
	default:
		return fmt.Sprintf("What is %d/%d ÷ %d/%d?", num1, den1, num2, den2),
			fmt.Sprintf("%d/%d", num1*den2, den1*num2)
	}
}

func (g *Generator) sequence(level int) (string, string) {
	tier := level / 10
	if tier > 2 {
		tier = 2
	}

	switch tier {
	case 0:
		start := g.randInt(1, 10)
		diff := g.randInt(2, 5)
		n := g.randInt(5, 8)
		text := fmt.Sprintf("What is the %s term in the sequence: %d, %d, %d, ...?",
			ordinal(n), start, start+diff, start+2*diff)
		return text, itoa(start + (n-1)*diff)
	case 1:
		start := g.randInt(1, 5)
		ratio := g.randInt(2, 4)
		n := g.randInt(4, 6)
		text := fmt.Sprintf("What is the %s term in the sequence: %d, %d, %d, ...?",
			ordinal(n), start, start*ratio, start*ratio*ratio)
		return text, itoa(start * pow(ratio, n-1))
	default:
		n := g.randInt(6, 10)
		return fmt.Sprintf("What is the %s number in the Fibonacci sequence?", ordinal(n)),
			itoa(fibonacci(n))
	}
}

func (g *Generator) probability(level int) (string, string) {
	total := g.randInt(10, 20)
	favorable := g.randInt(1, total-1)

	var scenario string
	switch g.rng.IntN(4) {
	case 0:
		scenario = fmt.Sprintf("A bag has %d red marbles and %d blue marbles. You pick one marble at random.",
			favorable, total-favorable)
	case 1:
		scenario = "A dice is rolled. What's the probability of rolling an even number?"
	case 2:
		scenario = "A deck of cards has 52 cards. What's the probability of drawing a heart?"
	default:
		scenario = "A spinner has 6 equal sections numbered 1-6. What's the probability of spinning a prime number?"
	}

	return scenario + " What is the probability?", fmt.Sprintf("%d/%d", favorable, total)
}

func (g *Generator) calculus(level int) (string, string) {
	if g.rng.IntN(2) == 0 {
		n := g.randInt(2, 5)
		return fmt.Sprintf("What is the derivative of x^%d?", n),
			fmt.Sprintf("%dx^%d", n, n-1)
	}
	m := g.randInt(2, 4)
	return fmt.Sprintf("What is the integral of %dx^%d?", m, m-1),
		fmt.Sprintf("x^%d", m)
}

func (g *Generator) wordProblem(level int) (string, string) {
	switch g.rng.IntN(3) {
	case 0:
		speed := 60 + level*5
		return fmt.Sprintf("If a train travels at %d km/h for 2 hours, how far does it travel?", speed),
			itoa(speed * 2)
	case 1:
		eaten := 2 + level/5
		return fmt.Sprintf("A pizza is cut into 8 equal slices. If you eat %d slices, what fraction of the pizza remains?", eaten),
			fmt.Sprintf("%d/8", 8-eaten)
	default:
		pages := 200 + level*10
		perDay := 20 + level
		days := (pages + perDay - 1) / perDay
		return fmt.Sprintf("If a book has %d pages and you read %d pages per day, how many days to finish?", pages, perDay),
			itoa(days)
	}
}

// explanations is the fixed per-category lookup used for every question.
var explanations = map[Category]string{
	CategoryArithmetic:  "The solution involves basic arithmetic operations.",
	CategoryAlgebra:     "Solve for the variable using algebraic manipulation.",
	CategoryGeometry:    "Apply the appropriate geometric formula.",
	CategoryFractions:   "Find common denominators or multiply across.",
	CategorySequences:   "Identify the pattern in the sequence.",
	CategoryProbability: "Calculate favorable outcomes over total outcomes.",
	CategoryCalculus:    "Apply differentiation or integration rules.",
	CategoryWordProblem: "Translate the word problem into a mathematical equation.",
}

// randInt returns a uniform integer in [min, max].
func (g *Generator) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.IntN(max-min+1)
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// fibonacci returns the nth Fibonacci number with fib(0)=0, fib(1)=1.
func fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a * b / gcd(a, b)
}

// ordinal formats n as "1st", "2nd", "23rd", "11th", ...
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
