package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iconidentify/socialgen/internal/config"
	"github.com/iconidentify/socialgen/internal/domain"
	"github.com/iconidentify/socialgen/internal/extract"
	"github.com/iconidentify/socialgen/internal/fallback"
	"github.com/iconidentify/socialgen/internal/prompt"
	"github.com/iconidentify/socialgen/pkg/inference"
)

// GenerationService turns briefs into posts. The model path is tried first;
// any failure after validation falls back to template synthesis.
type GenerationService struct {
	client      inference.Client
	synthesizer *fallback.Synthesizer
	inferCfg    config.InferenceConfig
	pipelineCfg config.PipelineConfig
	logger      *slog.Logger
}

// NewGenerationService creates a new generation service. A nil client
// disables the model path; a nil logger uses slog.Default().
func NewGenerationService(
	client inference.Client,
	synthesizer *fallback.Synthesizer,
	inferCfg config.InferenceConfig,
	pipelineCfg config.PipelineConfig,
	logger *slog.Logger,
) *GenerationService {
	if synthesizer == nil {
		synthesizer = fallback.NewSynthesizer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationService{
		client:      client,
		synthesizer: synthesizer,
		inferCfg:    inferCfg,
		pipelineCfg: pipelineCfg,
		logger:      logger,
	}
}

// Generate produces a post for the brief. The only error it returns wraps
// domain.ErrMissingField; every other failure yields a fallback outcome.
func (s *GenerationService) Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationOutcome, error) {
	brief = brief.Normalized()
	if err := brief.Validate(); err != nil {
		return nil, domain.NewStageError(domain.StageValidating, err)
	}

	id := uuid.NewString()
	logger := s.logger.With(
		"generation_id", id,
		"platform", brief.Platform,
		"tone", brief.ParsedTone().String(),
	)

	result, err := s.generateWithModel(ctx, brief, logger)
	if err != nil {
		logger.Warn("model generation failed, using fallback",
			"stage", failedStage(err),
			"error", err,
		)
		return &domain.GenerationOutcome{
			ID:     id,
			Source: domain.SourceFallback,
			Result: s.synthesizer.Synthesize(brief),
			Reason: err,
		}, nil
	}

	logger.Info("model generation succeeded", "hashtags", len(result.Hashtags))
	return &domain.GenerationOutcome{
		ID:     id,
		Source: domain.SourceAI,
		Result: result,
	}, nil
}

// Fallback returns a template post without contacting the model.
func (s *GenerationService) Fallback(brief domain.Brief) (*domain.GenerationOutcome, error) {
	brief = brief.Normalized()
	if err := brief.Validate(); err != nil {
		return nil, domain.NewStageError(domain.StageValidating, err)
	}
	return &domain.GenerationOutcome{
		ID:     uuid.NewString(),
		Source: domain.SourceFallback,
		Result: s.synthesizer.Synthesize(brief),
	}, nil
}

func (s *GenerationService) generateWithModel(ctx context.Context, brief domain.Brief, logger *slog.Logger) (domain.ContentResult, error) {
	if s.client == nil {
		return domain.ContentResult{}, domain.NewStageError(domain.StageGenerating,
			fmt.Errorf("%w: no inference client configured", domain.ErrUpstreamUnavailable))
	}

	problem := fallback.Classify(brief.Product)

	var productCtx *domain.ProductContext
	if s.pipelineCfg.TwoStage {
		analysis, err := s.analyze(ctx, brief, problem)
		if err != nil {
			return domain.ContentResult{}, err
		}
		logger.Debug("product analysis complete", "category", analysis.Category)
		productCtx = &analysis
	}

	raw, err := s.client.Infer(ctx, prompt.BuildGenerationPrompt(brief, problem, productCtx), inference.Params{
		MaxNewTokens:      s.inferCfg.MaxNewTokens,
		Temperature:       s.inferCfg.Temperature,
		RepetitionPenalty: s.inferCfg.RepetitionPenalty,
	})
	if err != nil {
		return domain.ContentResult{}, domain.NewStageError(domain.StageGenerating, err)
	}

	result, err := extract.Content(raw)
	if err != nil {
		return domain.ContentResult{}, domain.NewStageError(domain.StageExtracting, err)
	}
	return result, nil
}

func (s *GenerationService) analyze(ctx context.Context, brief domain.Brief, problem domain.ProblemPhrase) (domain.ProductContext, error) {
	raw, err := s.client.Infer(ctx, prompt.BuildAnalysisPrompt(brief, problem), inference.Params{
		MaxNewTokens: s.pipelineCfg.AnalysisMaxNewTokens,
		Temperature:  s.pipelineCfg.AnalysisTemperature,
	})
	if err != nil {
		return domain.ProductContext{}, domain.NewStageError(domain.StageAnalyzing, err)
	}

	productCtx, err := extract.Context(raw)
	if err != nil {
		return domain.ProductContext{}, domain.NewStageError(domain.StageAnalyzing, err)
	}
	return productCtx, nil
}

func failedStage(err error) string {
	var stageErr *domain.StageError
	if errors.As(err, &stageErr) {
		return string(stageErr.Stage)
	}
	return "unknown"
}
