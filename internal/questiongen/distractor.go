package questiongen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxDistractorAttempts bounds the candidate loop. The source loop is
// unbounded and can stall when the candidate space is tiny.
const maxDistractorAttempts = 40

var symbolicPattern = regexp.MustCompile(`^(\d*)x\^(\d+)$`)

// options returns 4 distinct choices containing the canonical answer,
// shuffled. Candidates are compared as literal strings, so unreduced
// fractions like "2/4" and "1/2" count as distinct.
func (g *Generator) options(answer string, level int) []string {
	variance := level / 2
	if variance < 1 {
		variance = 1
	}

	opts := []string{answer}
	for attempt := 0; len(opts) < 4 && attempt < maxDistractorAttempts; attempt++ {
		candidate := g.distractor(answer, variance)
		if candidate == "" || contains(opts, candidate) {
			continue
		}
		opts = append(opts, candidate)
	}

	// Fallback fill when the candidate space ran dry.
	for _, f := range []string{"undefined", "0", "1"} {
		if len(opts) == 4 {
			break
		}
		if !contains(opts, f) {
			opts = append(opts, f)
		}
	}
	for n := 2; len(opts) < 4; n++ {
		if s := itoa(n); !contains(opts, s) {
			opts = append(opts, s)
		}
	}

	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// distractor derives one wrong candidate near the canonical answer.
func (g *Generator) distractor(answer string, variance int) string {
	if strings.Contains(answer, "/") {
		parts := strings.SplitN(answer, "/", 2)
		num, errN := strconv.Atoi(parts[0])
		den, errD := strconv.Atoi(parts[1])
		if errN != nil || errD != nil {
			return ""
		}
		return fmt.Sprintf("%d/%d",
			num+g.randInt(-variance, variance),
			den+g.randInt(-variance, variance))
	}

	if f, err := strconv.ParseFloat(answer, 64); err == nil {
		var wrong float64
		if g.rng.Float64() > 0.5 {
			wrong = f + float64(g.randInt(-variance*2, variance*2))
		} else {
			wrong = f * (1 + float64(g.randInt(-variance, variance))/10)
			wrong = math.Round(wrong*100) / 100
		}
		if wrong == f {
			wrong++
		}
		return strconv.FormatFloat(wrong, 'f', -1, 64)
	}

	return g.symbolicDistractor(answer)
}

// symbolicDistractor perturbs the coefficient or exponent of a "cx^e"
// answer. Non-matching answers keep the source's "undefined" literal.
func (g *Generator) symbolicDistractor(answer string) string {
	m := symbolicPattern.FindStringSubmatch(answer)
	if m == nil {
		return "undefined"
	}

	coeff := 1
	if m[1] != "" {
		coeff, _ = strconv.Atoi(m[1])
	}
	exp, _ := strconv.Atoi(m[2])

	coeff += g.randInt(-2, 2)
	exp += g.randInt(-1, 1)
	if coeff < 0 {
		coeff = 0
	}
	if exp < 1 {
		exp = 1
	}

	switch {
	case coeff == 0:
		return "0"
	case coeff == 1:
		return fmt.Sprintf("x^%d", exp)
	default:
		return fmt.Sprintf("%dx^%d", coeff, exp)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
