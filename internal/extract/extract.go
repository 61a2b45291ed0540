// Package extract pulls a JSON object out of free-form model output and
// validates it as a post or a product analysis.
//
// Locating the object: the greedy region from the first '{' to the last '}'
// is tried first. If that region is not valid JSON (for example when the text
// holds two separate objects), balanced brace regions are scanned left to
// right, skipping braces inside JSON strings, and the first one that parses
// wins. Hugging Face envelopes ([{"generated_text": "..."}]) are unwrapped
// before the search.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/iconidentify/socialgen/internal/domain"
)

var greedyObject = regexp.MustCompile(`(?s)\{.*\}`)

// Content extracts and validates a post from raw model output.
//
// Missing or malformed hashtags and cta are repaired with defaults; a missing
// or short caption fails the whole extraction. Valid hashtags are returned as
// the model wrote them; see NormalizeHashtags for presentation.
func Content(raw string) (domain.ContentResult, error) {
	obj, err := findObject(raw)
	if err != nil {
		return domain.ContentResult{}, err
	}

	caption, _ := stringField(obj, "caption")
	caption = strings.TrimSpace(caption)
	if utf8.RuneCountInString(caption) < domain.MinCaptionLength {
		return domain.ContentResult{}, fmt.Errorf("%w: got %d characters, need %d",
			domain.ErrWeakCaption, utf8.RuneCountInString(caption), domain.MinCaptionLength)
	}

	hashtags, ok := stringSlice(obj["hashtags"])
	if !ok || len(NormalizeHashtags(hashtags)) == 0 {
		hashtags = domain.DefaultHashtags()
	}

	cta, _ := stringField(obj, "cta")
	cta = strings.TrimSpace(cta)
	if cta == "" {
		cta = domain.DefaultCTA
	}

	return domain.ContentResult{
		Caption:  caption,
		Hashtags: hashtags,
		CTA:      cta,
	}, nil
}

// Context extracts a product analysis. Every field must be a non-empty string.
func Context(raw string) (domain.ProductContext, error) {
	obj, err := findObject(raw)
	if err != nil {
		return domain.ProductContext{}, err
	}

	var ctx domain.ProductContext
	fields := []struct {
		key string
		dst *string
	}{
		{"category", &ctx.Category},
		{"problem", &ctx.Problem},
		{"benefit", &ctx.Benefit},
		{"emotion", &ctx.Emotion},
	}
	for _, f := range fields {
		v, _ := stringField(obj, f.key)
		*f.dst = strings.TrimSpace(v)
		if *f.dst == "" {
			return domain.ProductContext{}, fmt.Errorf("%w: missing %s", domain.ErrIncompleteContext, f.key)
		}
	}
	return ctx, nil
}

// NormalizeHashtags trims tags, adds a leading '#', drops empty entries and
// removes case-insensitive duplicates while keeping order.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimLeft(tag, "#")
		tag = strings.Join(strings.Fields(tag), "")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// FindJSONObject returns the first JSON object embedded in text.
func FindJSONObject(text string) (string, bool) {
	greedy := greedyObject.FindString(text)
	if greedy == "" {
		return "", false
	}
	if json.Valid([]byte(greedy)) {
		return greedy, true
	}
	for _, candidate := range balancedObjects(text) {
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

func findObject(raw string) (map[string]any, error) {
	text := unwrapGenerated(raw)

	region, ok := FindJSONObject(text)
	if !ok {
		if greedyObject.MatchString(text) {
			return nil, fmt.Errorf("%w: braces present but no region parses", domain.ErrExtraction)
		}
		return nil, fmt.Errorf("%w: no object in text", domain.ErrExtraction)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(region), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	return obj, nil
}

// unwrapGenerated returns the generated text from a Hugging Face response
// envelope, or raw unchanged when it is not one.
func unwrapGenerated(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var list []struct {
		GeneratedText *string `json:"generated_text"`
	}
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil && len(list) > 0 && list[0].GeneratedText != nil {
		return *list[0].GeneratedText
	}

	var single struct {
		GeneratedText *string `json:"generated_text"`
	}
	if err := json.Unmarshal([]byte(trimmed), &single); err == nil && single.GeneratedText != nil {
		return *single.GeneratedText
	}

	return raw
}

// balancedObjects returns every top-level brace-balanced region of text in
// order of appearance. Braces inside double-quoted strings are ignored.
func balancedObjects(text string) []string {
	var out []string
	depth, start := 0, -1
	inString, escaped := false, false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, text[start:i+1])
				start = -1
			}
		}
	}
	return out
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

// stringSlice reports whether v is a JSON array made only of strings.
func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
