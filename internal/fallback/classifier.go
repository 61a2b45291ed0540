// Package fallback builds social posts from templates when the model path
// cannot produce one.
package fallback

import (
	"strings"

	"github.com/iconidentify/socialgen/internal/domain"
)

// DefaultProblem is returned when no keyword group matches a product.
const DefaultProblem domain.ProblemPhrase = "managing daily tasks efficiently"

type keywordGroup struct {
	keywords []string
	problem  domain.ProblemPhrase
}

// Order matters: the first matching group wins.
var problemGroups = []keywordGroup{
	{[]string{"marketing", "content"}, "creating consistent content without burning time"},
	{[]string{"fitness", "workout"}, "staying consistent with workouts"},
	{[]string{"food", "meal", "recipe"}, "deciding meals after a long day"},
	{[]string{"finance", "expense", "budget"}, "tracking money without manual effort"},
	{[]string{"ai"}, "using AI tools effectively without complexity"},
	{[]string{"learning", "course"}, "finding time to learn new skills"},
}

// Classify maps a product description to the pain point of the first
// keyword group it mentions. Matching is case-insensitive substring search.
func Classify(product string) domain.ProblemPhrase {
	p := strings.ToLower(product)
	for _, g := range problemGroups {
		for _, kw := range g.keywords {
			if strings.Contains(p, kw) {
				return g.problem
			}
		}
	}
	return DefaultProblem
}
