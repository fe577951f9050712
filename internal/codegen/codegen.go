// Package codegen produces the deterministic daily code.
//
// The generator is a pure function of the date string: the same date always
// yields the same code, on any platform, so a puzzle can be regenerated
// byte-identically if it were ever lost. In practice it is generated once and
// persisted.
package codegen

// LCG constants (numerical recipes)
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// Symbol range for code digits
const (
	MinSymbol = 1
	MaxSymbol = 6
)

// CodeLength is the number of digits drawn per code
const CodeLength = 4

// Seed hashes a date string to a non-negative 32-bit seed.
// The accumulation is hash*31 + byte with wraparound 32-bit signed
// arithmetic at every step, then the absolute value is taken.
func Seed(s string) uint32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = (h << 5) - h + int32(s[i])
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// lcg is a linear congruential generator over the full 32-bit state space
type lcg struct {
	state uint32
}

// next advances the state and yields a value in [0, 1)
func (g *lcg) next() float64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return float64(g.state) / (1 << 32)
}

// Generate returns the code for the given date string: CodeLength integers in
// [MinSymbol, MaxSymbol]. When allowDuplicates is false each draw removes the
// chosen symbol from the candidate pool, so the result has distinct digits.
func Generate(date string, allowDuplicates bool) []int {
	g := lcg{state: Seed(date)}

	pool := make([]int, 0, MaxSymbol-MinSymbol+1)
	for v := MinSymbol; v <= MaxSymbol; v++ {
		pool = append(pool, v)
	}

	code := make([]int, 0, CodeLength)
	for i := 0; i < CodeLength; i++ {
		idx := int(g.next() * float64(len(pool)))
		code = append(code, pool[idx])
		if !allowDuplicates {
			pool = append(pool[:idx], pool[idx+1:]...)
		}
	}
	return code
}
