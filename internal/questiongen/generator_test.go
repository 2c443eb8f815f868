package questiongen

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func testGenerator(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

func TestGenerateOptionsShape(t *testing.T) {
	g := testGenerator(1)

	for _, level := range []int{1, 5, 12, 25, 40, 60} {
		for i := 0; i < 200; i++ {
			q := g.Generate(level)

			if len(q.Options) != 4 {
				t.Fatalf("level %d: got %d options, want 4 (%v)", level, len(q.Options), q.Options)
			}

			seen := make(map[string]bool, 4)
			answerCount := 0
			for _, opt := range q.Options {
				if seen[opt] {
					t.Fatalf("level %d: duplicate option %q in %v", level, opt, q.Options)
				}
				seen[opt] = true
				if opt == q.Answer {
					answerCount++
				}
			}
			if answerCount != 1 {
				t.Fatalf("level %d: answer %q appears %d times in %v", level, q.Answer, answerCount, q.Options)
			}
		}
	}
}

func TestGenerateBandAttached(t *testing.T) {
	g := testGenerator(2)

	q := g.Generate(3)
	if q.Difficulty != "Easy" || q.TimeLimit != 30 {
		t.Errorf("level 3 question got band %q/%ds, want Easy/30s", q.Difficulty, q.TimeLimit)
	}

	q = g.Generate(55)
	if q.Difficulty != "Master" || q.TimeLimit != 10 {
		t.Errorf("level 55 question got band %q/%ds, want Master/10s", q.Difficulty, q.TimeLimit)
	}
}

func TestGenerateCategoryRespectsPool(t *testing.T) {
	g := testGenerator(3)

	for i := 0; i < 100; i++ {
		q := g.Generate(4)
		if q.Category != CategoryArithmetic {
			t.Fatalf("level 4 produced category %q, want arithmetic only", q.Category)
		}
	}

	allowed := map[Category]bool{
		CategoryArithmetic: true,
		CategoryFractions:  true,
	}
	for i := 0; i < 100; i++ {
		q := g.Generate(8)
		if !allowed[q.Category] {
			t.Fatalf("level 8 produced category %q outside pool", q.Category)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := testGenerator(42)
	b := testGenerator(42)

	for i := 0; i < 50; i++ {
		qa := a.Generate(17)
		qb := b.Generate(17)
		if qa.Text != qb.Text || qa.Answer != qb.Answer {
			t.Fatalf("same seed diverged at question %d: %q vs %q", i, qa.Text, qb.Text)
		}
		if strings.Join(qa.Options, "|") != strings.Join(qb.Options, "|") {
			t.Fatalf("same seed produced different options at question %d", i)
		}
	}
}

var divisionPattern = regexp.MustCompile(`^What is (\d+) ÷ (\d+)\?$`)

func TestArithmeticDivisionExact(t *testing.T) {
	g := testGenerator(4)

	checked := 0
	for _, level := range []int{1, 3, 10, 20} {
		for i := 0; i < 400; i++ {
			text, answer := g.arithmetic(level)
			m := divisionPattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			checked++
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			if b == 0 || a%b != 0 {
				t.Fatalf("inexact division %d ÷ %d at level %d", a, b, level)
			}
			if answer != itoa(a/b) {
				t.Fatalf("division answer %q, want %d", answer, a/b)
			}
		}
	}
	if checked == 0 {
		t.Fatal("no division questions sampled")
	}
}

var subtractionPattern = regexp.MustCompile(`^What is (\d+) - (\d+)\?$`)

func TestArithmeticSubtractionNonNegative(t *testing.T) {
	g := testGenerator(5)

	for i := 0; i < 500; i++ {
		text, answer := g.arithmetic(1)
		m := subtractionPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 0 {
			t.Fatalf("subtraction %q gave answer %q", text, answer)
		}
	}
}

func TestAlgebraLinearTier(t *testing.T) {
	g := testGenerator(6)

	// Levels below 15 must pose linear equations.
	for i := 0; i < 100; i++ {
		text, answer := g.algebra(10)
		if !strings.Contains(text, "what is x?") {
			t.Fatalf("level 10 algebra posed %q, want linear form", text)
		}
		if _, err := strconv.Atoi(answer); err != nil {
			t.Fatalf("linear answer %q is not an integer", answer)
		}
	}
}

func TestAlgebraQuadraticAnswerIsInteger(t *testing.T) {
	g := testGenerator(7)

	for i := 0; i < 200; i++ {
		_, answer := g.algebra(30)
		if _, err := strconv.Atoi(answer); err != nil {
			t.Fatalf("quadratic answer %q is not a rounded integer", answer)
		}
	}
}

func TestFractionsAnswerIsFraction(t *testing.T) {
	g := testGenerator(8)

	pattern := regexp.MustCompile(`^-?\d+/\d+$`)
	for i := 0; i < 200; i++ {
		_, answer := g.fractions(8)
		if !pattern.MatchString(answer) {
			t.Fatalf("fraction answer %q does not match num/den", answer)
		}
	}
}

func TestSequenceTiers(t *testing.T) {
	g := testGenerator(9)

	// Tier 0: arithmetic progressions only.
	for i := 0; i < 50; i++ {
		text, _ := g.sequence(5)
		if strings.Contains(text, "Fibonacci") {
			t.Fatalf("level 5 sequence produced Fibonacci: %q", text)
		}
	}

	// Tier 2: always Fibonacci.
	for i := 0; i < 50; i++ {
		text, answer := g.sequence(25)
		if !strings.Contains(text, "Fibonacci") {
			t.Fatalf("level 25 sequence produced %q, want Fibonacci", text)
		}
		n, _ := strconv.Atoi(answer)
		if n < 8 || n > 55 {
			// fib(6)=8 .. fib(10)=55 for positions 6..10
			t.Fatalf("Fibonacci answer %q out of range for positions 6-10", answer)
		}
	}
}

func TestFibonacci(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {6, 8}, {10, 55},
	}
	for _, tt := range tests {
		if got := fibonacci(tt.n); got != tt.want {
			t.Errorf("fibonacci(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"}, {101, "101st"},
	}
	for _, tt := range tests {
		if got := ordinal(tt.n); got != tt.want {
			t.Errorf("ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestProbabilityAnswerUnreduced(t *testing.T) {
	g := testGenerator(10)

	pattern := regexp.MustCompile(`^(\d+)/(\d+)$`)
	for i := 0; i < 100; i++ {
		_, answer := g.probability(25)
		m := pattern.FindStringSubmatch(answer)
		if m == nil {
			t.Fatalf("probability answer %q not favorable/total", answer)
		}
		favorable, _ := strconv.Atoi(m[1])
		total, _ := strconv.Atoi(m[2])
		if total < 10 || total > 20 {
			t.Fatalf("total %d out of [10,20]", total)
		}
		if favorable < 1 || favorable > total-1 {
			t.Fatalf("favorable %d out of [1,%d]", favorable, total-1)
		}
	}
}

func TestCalculusSymbolicAnswers(t *testing.T) {
	g := testGenerator(11)

	pattern := regexp.MustCompile(`^\d*x\^\d+$`)
	for i := 0; i < 100; i++ {
		_, answer := g.calculus(60)
		if !pattern.MatchString(answer) {
			t.Fatalf("calculus answer %q is not symbolic cx^e", answer)
		}
	}
}

func TestRandomRoastAndCompliment(t *testing.T) {
	g := testGenerator(12)

	if g.RandomRoast() == "" {
		t.Error("empty roast")
	}
	if g.RandomCompliment() == "" {
		t.Error("empty compliment")
	}
}
