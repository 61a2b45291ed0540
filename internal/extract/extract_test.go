package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iconidentify/socialgen/internal/domain"
)

func TestContent_IgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the JSON: {"caption":"X is great for Y","hashtags":["a","b"],"cta":"Go"} Thanks!`

	got, err := Content(raw)
	if err != nil {
		t.Fatalf("Content() failed: %v", err)
	}

	want := domain.ContentResult{
		Caption:  "X is great for Y",
		Hashtags: []string{"a", "b"},
		CTA:      "Go",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Content() = %+v, want %+v", got, want)
	}
}

func TestContent_HardFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"no braces", "The model is loading, please retry.", domain.ErrExtraction},
		{"empty", "", domain.ErrExtraction},
		{"invalid json", `{caption: not json}`, domain.ErrExtraction},
		{"caption too short", `{"caption":"hi"}`, domain.ErrWeakCaption},
		{"caption missing", `{"hashtags":["a"],"cta":"Go"}`, domain.ErrWeakCaption},
		{"caption not string", `{"caption":42,"cta":"Go"}`, domain.ErrWeakCaption},
		{"caption whitespace", `{"caption":"                        "}`, domain.ErrWeakCaption},
		{"error body", `{"error":"Model is currently loading","estimated_time":20}`, domain.ErrWeakCaption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Content(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Content() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestContent_SoftRepairs(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantHashtags []string
		wantCTA      string
	}{
		{
			name:         "hashtags absent",
			raw:          `{"caption":"A long enough caption here","cta":"Buy"}`,
			wantHashtags: domain.DefaultHashtags(),
			wantCTA:      "Buy",
		},
		{
			name:         "hashtags not array",
			raw:          `{"caption":"A long enough caption here","hashtags":"#one #two","cta":"Buy"}`,
			wantHashtags: domain.DefaultHashtags(),
			wantCTA:      "Buy",
		},
		{
			name:         "hashtags mixed types",
			raw:          `{"caption":"A long enough caption here","hashtags":["#ok",3],"cta":"Buy"}`,
			wantHashtags: domain.DefaultHashtags(),
			wantCTA:      "Buy",
		},
		{
			name:         "hashtags empty array",
			raw:          `{"caption":"A long enough caption here","hashtags":[],"cta":"Buy"}`,
			wantHashtags: domain.DefaultHashtags(),
			wantCTA:      "Buy",
		},
		{
			name:         "cta absent",
			raw:          `{"caption":"A long enough caption here","hashtags":["#x"]}`,
			wantHashtags: []string{"#x"},
			wantCTA:      domain.DefaultCTA,
		},
		{
			name:         "cta empty",
			raw:          `{"caption":"A long enough caption here","hashtags":["#x"],"cta":"  "}`,
			wantHashtags: []string{"#x"},
			wantCTA:      domain.DefaultCTA,
		},
		{
			name:         "cta not string",
			raw:          `{"caption":"A long enough caption here","hashtags":["#x"],"cta":["go"]}`,
			wantHashtags: []string{"#x"},
			wantCTA:      domain.DefaultCTA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Content(tt.raw)
			if err != nil {
				t.Fatalf("Content() failed: %v", err)
			}
			if !reflect.DeepEqual(got.Hashtags, tt.wantHashtags) {
				t.Errorf("Hashtags = %v, want %v", got.Hashtags, tt.wantHashtags)
			}
			if got.CTA != tt.wantCTA {
				t.Errorf("CTA = %q, want %q", got.CTA, tt.wantCTA)
			}
			if !got.IsComplete() {
				t.Errorf("Content() = %+v, want complete result", got)
			}
		})
	}
}

func TestContent_HuggingFaceEnvelope(t *testing.T) {
	raw := `[{"generated_text":" Here you go:\n{\"caption\": \"NovaReach makes content easy {really}\", \"hashtags\": [\"#AI\"], \"cta\": \"Try it\"}"}]`

	got, err := Content(raw)
	if err != nil {
		t.Fatalf("Content() failed: %v", err)
	}
	if got.Caption != "NovaReach makes content easy {really}" {
		t.Errorf("Caption = %q", got.Caption)
	}
	if got.CTA != "Try it" {
		t.Errorf("CTA = %q, want %q", got.CTA, "Try it")
	}
}

func TestContent_CaptionTrimmed(t *testing.T) {
	got, err := Content(`{"caption":"   Padded caption that is long   ","cta":"Go"}`)
	if err != nil {
		t.Fatalf("Content() failed: %v", err)
	}
	if got.Caption != "Padded caption that is long" {
		t.Errorf("Caption = %q, want trimmed", got.Caption)
	}
}

func TestFindJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "single object",
			text:   `prefix {"a":1} suffix`,
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "nested braces use greedy region",
			text:   `x {"a":{"b":2}} y`,
			want:   `{"a":{"b":2}}`,
			wantOK: true,
		},
		{
			name:   "two objects first wins",
			text:   `{"a":1} and then {"b":2}`,
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "braces inside strings",
			text:   `note: {"a":"}{"} end`,
			want:   `{"a":"}{"}`,
			wantOK: true,
		},
		{
			name:   "broken first object then valid",
			text:   `{oops} then {"ok":true}`,
			want:   `{"ok":true}`,
			wantOK: true,
		},
		{
			name:   "no object",
			text:   "nothing here",
			wantOK: false,
		},
		{
			name:   "unbalanced",
			text:   `{"a":1`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindJSONObject(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("FindJSONObject(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FindJSONObject(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	raw := `Analysis: {"category":"marketing software","problem":"inconsistent posting","benefit":"saves hours","emotion":"relief"}`

	got, err := Context(raw)
	if err != nil {
		t.Fatalf("Context() failed: %v", err)
	}

	want := domain.ProductContext{
		Category: "marketing software",
		Problem:  "inconsistent posting",
		Benefit:  "saves hours",
		Emotion:  "relief",
	}
	if got != want {
		t.Errorf("Context() = %+v, want %+v", got, want)
	}
}

func TestContext_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"no json", "I cannot help with that.", domain.ErrExtraction},
		{"missing category", `{"problem":"p","benefit":"b","emotion":"e"}`, domain.ErrIncompleteContext},
		{"empty emotion", `{"category":"c","problem":"p","benefit":"b","emotion":""}`, domain.ErrIncompleteContext},
		{"non-string benefit", `{"category":"c","problem":"p","benefit":1,"emotion":"e"}`, domain.ErrIncompleteContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Context(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Context() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeHashtags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"adds prefix", []string{"a", "b"}, []string{"#a", "#b"}},
		{"keeps prefix", []string{"#Growth"}, []string{"#Growth"}},
		{"collapses multiple hashes", []string{"##Growth"}, []string{"#Growth"}},
		{"drops empty", []string{"", "  ", "#", "x"}, []string{"#x"}},
		{"removes spaces", []string{"tech tools"}, []string{"#techtools"}},
		{"dedupes case-insensitively", []string{"#AI", "ai", "#Ai"}, []string{"#AI"}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHashtags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeHashtags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
