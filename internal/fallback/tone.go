package fallback

import (
	"fmt"

	"github.com/iconidentify/socialgen/internal/domain"
)

// ApplyTone renders a caption in the given tone. Brand and product always
// appear verbatim; the tone only changes connective phrasing and emoji.
func ApplyTone(tone domain.Tone, brandName, product, narrative string) string {
	switch tone {
	case domain.ToneProfessional:
		return fmt.Sprintf("%s %s provides a %s designed to deliver clarity, efficiency, and measurable results.",
			narrative, brandName, product)
	case domain.ToneFunny:
		return fmt.Sprintf("%s Yeah… not fun 😅\n%s makes %s way less painful.",
			narrative, brandName, product)
	case domain.ToneEducational:
		return fmt.Sprintf("%s %s's %s focuses on removing friction through smarter design and usability.",
			narrative, brandName, product)
	case domain.ToneInspirational:
		return fmt.Sprintf("%s You deserve better tools. %s turns %s into a way to grow with confidence. ✨",
			narrative, brandName, product)
	case domain.ToneCasual:
		return casualCaption(brandName, product, narrative)
	default:
		return casualCaption(brandName, product, narrative)
	}
}

func casualCaption(brandName, product, narrative string) string {
	return fmt.Sprintf("%s %s keeps %s simple and actually useful.", narrative, brandName, product)
}

// CTA returns the call-to-action that goes with a tone.
func CTA(tone domain.Tone) string {
	switch tone {
	case domain.ToneProfessional:
		return "Learn more"
	case domain.ToneFunny:
		return "Tag someone who needs this 😂"
	case domain.ToneEducational:
		return "Save this for later 📌"
	case domain.ToneInspirational:
		return "Start your journey"
	case domain.ToneCasual:
		return "Check it out"
	default:
		return "Check it out"
	}
}
