package fallback

import (
	"strings"

	"github.com/iconidentify/socialgen/internal/domain"
)

var platformHashtags = map[string]string{
	"instagram": "#InstaGrowth",
	"linkedin":  "#LinkedInTips",
	"twitter":   "#TwitterTips",
	"x":         "#TwitterTips",
	"facebook":  "#FacebookMarketing",
	"tiktok":    "#TikTokTips",
}

// Synthesizer builds template posts. It never fails.
type Synthesizer struct {
	chooser Chooser
}

// NewSynthesizer creates a synthesizer. A nil chooser selects narratives at random.
func NewSynthesizer(chooser Chooser) *Synthesizer {
	if chooser == nil {
		chooser = RandomChooser{}
	}
	return &Synthesizer{chooser: chooser}
}

// Synthesize composes a complete post for the brief.
func (s *Synthesizer) Synthesize(brief domain.Brief) domain.ContentResult {
	brief = brief.Normalized()
	tone := brief.ParsedTone()

	problem := Classify(brief.Product)
	narrative := PickNarrative(BuildNarratives(problem, brief.Audience), s.chooser)

	return domain.ContentResult{
		Caption:  ApplyTone(tone, brief.BrandName, brief.Product, narrative),
		Hashtags: Hashtags(brief.Platform),
		CTA:      CTA(tone),
	}
}

// Hashtags returns the curated tag list, followed by a platform tag when
// the platform is recognised.
func Hashtags(platform string) []string {
	tags := domain.DefaultHashtags()
	if tag, ok := platformHashtags[strings.ToLower(strings.TrimSpace(platform))]; ok {
		tags = append(tags, tag)
	}
	return tags
}
