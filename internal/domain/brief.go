package domain

import (
	"fmt"
	"strings"
)

// Tone selects the phrasing style of a post.
type Tone int

const (
	ToneCasual Tone = iota
	ToneProfessional
	ToneFunny
	ToneEducational
	ToneInspirational
)

// DefaultTone is used for any tone value outside the known set.
const DefaultTone = ToneCasual

// String returns the display name of the tone.
func (t Tone) String() string {
	switch t {
	case ToneProfessional:
		return "Professional"
	case ToneFunny:
		return "Funny"
	case ToneEducational:
		return "Educational"
	case ToneInspirational:
		return "Inspirational"
	case ToneCasual:
		return "Casual"
	default:
		return DefaultTone.String()
	}
}

// ParseTone maps a tone name to a Tone. Matching ignores case and
// surrounding whitespace; unknown names resolve to DefaultTone.
func ParseTone(s string) Tone {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "professional":
		return ToneProfessional
	case "casual":
		return ToneCasual
	case "funny":
		return ToneFunny
	case "educational":
		return ToneEducational
	case "inspirational":
		return ToneInspirational
	default:
		return DefaultTone
	}
}

// Brief is a caller-supplied content request.
type Brief struct {
	BrandName string
	Product   string
	Audience  string
	Platform  string
	Tone      string
}

// Normalized returns a copy of the brief with surrounding whitespace removed
// from every field.
func (b Brief) Normalized() Brief {
	return Brief{
		BrandName: strings.TrimSpace(b.BrandName),
		Product:   strings.TrimSpace(b.Product),
		Audience:  strings.TrimSpace(b.Audience),
		Platform:  strings.TrimSpace(b.Platform),
		Tone:      strings.TrimSpace(b.Tone),
	}
}

// Validate checks that every field is present. Whitespace-only values
// count as missing.
func (b Brief) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"brandName", b.BrandName},
		{"product", b.Product},
		{"audience", b.Audience},
		{"platform", b.Platform},
		{"tone", b.Tone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
	}
	return nil
}

// ParsedTone returns the brief's tone as a Tone.
func (b Brief) ParsedTone() Tone {
	return ParseTone(b.Tone)
}
