package fallback

import (
	"fmt"
	"math/rand"

	"github.com/iconidentify/socialgen/internal/domain"
)

// Chooser picks an index in [0, n).
type Chooser interface {
	Choose(n int) int
}

// RandomChooser picks uniformly using the runtime-seeded global source.
type RandomChooser struct{}

// Choose returns a uniformly random index in [0, n).
func (RandomChooser) Choose(n int) int {
	if n <= 1 {
		return 0
	}
	return rand.Intn(n)
}

// FixedChooser always picks the same index, clamped to the valid range.
type FixedChooser int

// Choose returns the fixed index.
func (c FixedChooser) Choose(n int) int {
	i := int(c)
	if i < 0 || n <= 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// BuildNarratives returns opening sentences that all state the same pain
// point for the audience with different phrasing. Audience and problem are
// embedded verbatim, so every sentence starts with fixed text.
func BuildNarratives(problem domain.ProblemPhrase, audience string) []string {
	return []string{
		fmt.Sprintf("Many %s struggle with %s.", audience, problem),
		fmt.Sprintf("Lots of %s face %s.", audience, problem),
		fmt.Sprintf("For %s, %s is a real challenge.", audience, problem),
		fmt.Sprintf("Too often, %s slows %s down.", problem, audience),
	}
}

// PickNarrative selects one narrative with the given chooser.
func PickNarrative(narratives []string, chooser Chooser) string {
	if len(narratives) == 0 {
		return ""
	}
	return narratives[chooser.Choose(len(narratives))]
}
