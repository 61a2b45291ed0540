// Package inference calls a hosted text-generation endpoint.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iconidentify/socialgen/internal/config"
	"github.com/iconidentify/socialgen/internal/domain"
)

// Client sends a prompt to a text-generation model.
type Client interface {
	// Infer returns the raw response body for the prompt. Non-2xx responses
	// are not errors; their body is returned like any other.
	Infer(ctx context.Context, prompt string, params Params) (string, error)
}

// Params are the decoding parameters for one call.
type Params struct {
	MaxNewTokens      int
	Temperature       float64
	RepetitionPenalty float64 // zero omits the parameter
}

// HTTPClient implements Client using the Hugging Face inference API shape.
type HTTPClient struct {
	apiToken   string
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new inference client.
func NewClient(cfg config.InferenceConfig, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		apiToken: cfg.APIToken,
		url:      cfg.URL,
		timeout:  cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// generateRequest is the request body for the text-generation API.
type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens      int      `json:"max_new_tokens"`
	Temperature       float64  `json:"temperature"`
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty"`
	ReturnFullText    bool     `json:"return_full_text"`
}

// Infer issues one POST to the endpoint. It never retries.
func (c *HTTPClient) Infer(ctx context.Context, prompt string, params Params) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	genReq := generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens: params.MaxNewTokens,
			Temperature:  params.Temperature,
		},
	}
	if params.RepetitionPenalty != 0 {
		rp := params.RepetitionPenalty
		genReq.Parameters.RepetitionPenalty = &rp
	}

	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyError("send request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyError("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("inference endpoint returned non-2xx status",
			"status", resp.StatusCode,
			"size", len(respBody),
		)
	}

	return string(respBody), nil
}

// classifyError maps transport failures onto ErrTimeout or ErrUpstreamUnavailable.
func classifyError(op string, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstreamUnavailable, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
