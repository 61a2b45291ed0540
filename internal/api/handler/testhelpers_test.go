package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/iconidentify/socialgen/internal/domain"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockGenerator is a test implementation of Generator.
type mockGenerator struct {
	outcome *domain.GenerationOutcome
	err     error
	briefs  []domain.Brief
}

func (m *mockGenerator) Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationOutcome, error) {
	m.briefs = append(m.briefs, brief)
	if m.err != nil {
		return nil, m.err
	}
	return m.outcome, nil
}
