package domain

import "strings"

// ProblemPhrase describes an audience pain point inferred from a product.
type ProblemPhrase string

// String returns the phrase text.
func (p ProblemPhrase) String() string {
	return string(p)
}

// ProductContext is the result of the optional analysis stage. It is only
// used to build the generation prompt and is never returned to callers.
type ProductContext struct {
	Category string `json:"category"`
	Problem  string `json:"problem"`
	Benefit  string `json:"benefit"`
	Emotion  string `json:"emotion"`
}

// Complete reports whether every field of the context is non-empty.
func (c ProductContext) Complete() bool {
	return strings.TrimSpace(c.Category) != "" &&
		strings.TrimSpace(c.Problem) != "" &&
		strings.TrimSpace(c.Benefit) != "" &&
		strings.TrimSpace(c.Emotion) != ""
}

// ContentResult is a finished social-media post.
type ContentResult struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// IsComplete reports whether caption, cta and hashtags are all populated.
func (c ContentResult) IsComplete() bool {
	return strings.TrimSpace(c.Caption) != "" &&
		strings.TrimSpace(c.CTA) != "" &&
		len(c.Hashtags) > 0
}

// Source records which path produced a result.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// GenerationOutcome wraps a result with its provenance.
type GenerationOutcome struct {
	ID     string
	Source Source
	Result ContentResult
	// Reason holds the failure that triggered the fallback, if any.
	Reason error
}

// MinCaptionLength is the shortest model caption, in characters, accepted
// before the AI attempt is discarded.
const MinCaptionLength = 15

// DefaultCTA replaces a missing call-to-action.
const DefaultCTA = "Learn more"

var defaultHashtags = []string{
	"#Productivity",
	"#Innovation",
	"#Startups",
	"#TechTools",
	"#Growth",
}

// DefaultHashtags returns a fresh copy of the curated fallback hashtag list.
func DefaultHashtags() []string {
	out := make([]string, len(defaultHashtags))
	copy(out, defaultHashtags)
	return out
}
