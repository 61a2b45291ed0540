package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iconidentify/socialgen/internal/domain"
	"github.com/iconidentify/socialgen/internal/extract"
)

// missingFieldsMessage is the client-facing text for every rejected brief.
const missingFieldsMessage = "All fields are required"

// maxBodyBytes caps the generate request body.
const maxBodyBytes = 64 << 10

// Generator produces posts from briefs.
type Generator interface {
	Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationOutcome, error)
}

// GenerateHandler handles post generation HTTP requests.
type GenerateHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(generator Generator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		logger:    logger,
	}
}

// GenerateRequest is the JSON request body for post generation.
type GenerateRequest struct {
	BrandName string `json:"brandName"`
	Product   string `json:"product"`
	Audience  string `json:"audience"`
	Platform  string `json:"platform"`
	Tone      string `json:"tone"`
}

// PostData is the generated post.
type PostData struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// GenerateResponse is the success envelope.
type GenerateResponse struct {
	Success bool     `json:"success"`
	Source  string   `json:"source"`
	Data    PostData `json:"data"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Generate handles POST /api/generate
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Debug("undecodable generate request", "error", err)
		h.writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	outcome, err := h.generator.Generate(r.Context(), domain.Brief{
		BrandName: req.BrandName,
		Product:   req.Product,
		Audience:  req.Audience,
		Platform:  req.Platform,
		Tone:      req.Tone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			h.writeError(w, http.StatusBadRequest, missingFieldsMessage)
			return
		}
		// The endpoint answers only 200 or 400.
		h.logger.Error("unexpected generation error", "error", err)
		h.writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	h.writeJSON(w, http.StatusOK, GenerateResponse{
		Success: true,
		Source:  string(outcome.Source),
		Data:    PresentPost(outcome.Result),
	})
}

// PresentPost normalizes a result for display.
func PresentPost(result domain.ContentResult) PostData {
	hashtags := extract.NormalizeHashtags(result.Hashtags)
	if len(hashtags) == 0 {
		hashtags = domain.DefaultHashtags()
	}
	return PostData{
		Caption:  result.Caption,
		Hashtags: hashtags,
		CTA:      result.CTA,
	}
}

func (h *GenerateHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *GenerateHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}
