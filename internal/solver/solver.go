// Package solver answers multiple-choice questions by asking an LLM and
// reconciling its reply against the supplied options.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"smart-answer/internal/llm"
	"smart-answer/internal/reconcile"
)

var (
	// ErrConfiguration means no completion provider credential is configured.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream wraps any failure surfaced by the completion provider.
	ErrUpstream = errors.New("upstream error")
)

// Service is safe for concurrent use; it holds no per-request state.
type Service struct {
	llm llm.Client
	log *slog.Logger
}

// New returns a Service. A nil client makes every Solve fail with ErrConfiguration.
func New(client llm.Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{llm: client, log: log}
}

// Solve asks the LLM to answer question and maps the reply onto options.
func (s *Service) Solve(ctx context.Context, question string, options []string) (reconcile.Result, error) {
	if s.llm == nil {
		return reconcile.Result{}, fmt.Errorf("%w: OPENAI_API_KEY not found in environment variables", ErrConfiguration)
	}
	log := s.log.With("solve_id", uuid.NewString(), "options", len(options))

	raw, err := s.llm.Answer(ctx, question, options)
	if err != nil {
		log.Warn("completion failed", "err", err)
		return reconcile.Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		log.Warn("completion was empty")
		return reconcile.Result{}, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	res := reconcile.Reconcile(raw, options)
	log.Debug("answer reconciled",
		"confidence", res.Confidence,
		"matched", res.MatchedOption != nil,
	)
	return res, nil
}
