// Package prompt renders the instructions sent to the text-generation model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/iconidentify/socialgen/internal/domain"
)

// BuildGenerationPrompt renders the content-generation instruction. When ctx
// is non-nil its fields are embedded next to the classified problem.
func BuildGenerationPrompt(brief domain.Brief, problem domain.ProblemPhrase, ctx *domain.ProductContext) string {
	var sb strings.Builder
	sb.WriteString("You are a professional social media copywriter.\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Content must be PRODUCT-SPECIFIC\n")
	sb.WriteString("- Tone affects style, NOT structure\n")
	sb.WriteString("- If content fits another product, it is WRONG\n")
	sb.WriteString("- Never return empty fields\n")
	sb.WriteString(fmt.Sprintf("- The caption must be at least %d characters long\n\n", domain.MinCaptionLength))

	sb.WriteString(fmt.Sprintf("Product: %s\n", brief.Product))
	sb.WriteString(fmt.Sprintf("Audience: %s\n", brief.Audience))
	sb.WriteString(fmt.Sprintf("Brand: %s\n", brief.BrandName))
	sb.WriteString(fmt.Sprintf("Platform: %s\n", brief.Platform))
	sb.WriteString(fmt.Sprintf("Tone: %s\n", brief.ParsedTone()))
	sb.WriteString(fmt.Sprintf("Core Problem: %s\n", problem))

	if ctx != nil {
		sb.WriteString("\nProduct analysis:\n")
		sb.WriteString(fmt.Sprintf("Category: %s\n", ctx.Category))
		sb.WriteString(fmt.Sprintf("Problem solved: %s\n", ctx.Problem))
		sb.WriteString(fmt.Sprintf("Key benefit: %s\n", ctx.Benefit))
		sb.WriteString(fmt.Sprintf("Target emotion: %s\n", ctx.Emotion))
	}

	sb.WriteString("\nReturn ONLY valid JSON:\n")
	sb.WriteString("{\n  \"caption\": \"\",\n  \"hashtags\": [],\n  \"cta\": \"\"\n}\n")

	return sb.String()
}

// BuildAnalysisPrompt renders the product-context analysis instruction used
// by the two-stage pipeline.
func BuildAnalysisPrompt(brief domain.Brief, problem domain.ProblemPhrase) string {
	var sb strings.Builder
	sb.WriteString("You are a product marketing analyst.\n\n")
	sb.WriteString("Analyze the product below for the given audience.\n")
	sb.WriteString("Every field is required and must be a short phrase.\n\n")

	sb.WriteString(fmt.Sprintf("Product: %s\n", brief.Product))
	sb.WriteString(fmt.Sprintf("Audience: %s\n", brief.Audience))
	sb.WriteString(fmt.Sprintf("Brand: %s\n", brief.BrandName))
	sb.WriteString(fmt.Sprintf("Likely problem: %s\n", problem))

	sb.WriteString("\nReturn ONLY valid JSON:\n")
	sb.WriteString("{\n  \"category\": \"\",\n  \"problem\": \"\",\n  \"benefit\": \"\",\n  \"emotion\": \"\"\n}\n")

	return sb.String()
}
