package app

import (
	"context"
	"sync"
	"time"

	"github.com/nleiva/codesensei/pkg/engine"
)

// ReviewSession represents one user's review session with shared logic
// for CLI and Web modes. It holds only the latest report: a new
// dispatch supersedes the previous result, last-result-wins.
type ReviewSession struct {
	ID          string
	SessionType string

	dispatcher *engine.Dispatcher
	Logger     *MetricsLogger

	mu         sync.Mutex
	lastReport *engine.Report
}

// SessionConfig holds configuration for creating a new session
type SessionConfig struct {
	ID          string
	SessionType string
	Delay       time.Duration
	LogDir      string
}

// NewReviewSession creates a new review session with all dependencies initialized
func NewReviewSession(config SessionConfig) (*ReviewSession, error) {
	logger, err := NewMetricsLogger(config.ID, config.SessionType, config.LogDir)
	if err != nil {
		return nil, NewSessionError(config.ID, "create", err)
	}

	return &ReviewSession{
		ID:          config.ID,
		SessionType: config.SessionType,
		dispatcher:  engine.NewDispatcher(config.Delay),
		Logger:      logger,
	}, nil
}

// ActionResponse represents the outcome of running one action
type ActionResponse struct {
	Report       engine.Report
	ResponseTime time.Duration
	Warning      bool // true when the report is an empty-input warning
}

// RunAction dispatches the action against the supplied inputs, records
// the interaction, and stores the resulting report.
func (s *ReviewSession) RunAction(ctx context.Context, action engine.Action, code, prompt string) *ActionResponse {
	warning := engine.MissingRequiredInput(action, code, prompt)

	startTime := time.Now()
	report := s.dispatcher.Dispatch(ctx, action, code, prompt)
	responseTime := time.Since(startTime)

	s.Logger.LogInteraction(action, len(code), len(prompt), responseTime, warning)

	s.mu.Lock()
	s.lastReport = &report
	s.mu.Unlock()

	return &ActionResponse{
		Report:       report,
		ResponseTime: responseTime,
		Warning:      warning,
	}
}

// LastReport returns the most recent report, or nil if none exists yet
func (s *ReviewSession) LastReport() *engine.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

// Reset discards the current report
func (s *ReviewSession) Reset() {
	s.mu.Lock()
	s.lastReport = nil
	s.mu.Unlock()
}

// GetSessionSummary returns session metrics summary
func (s *ReviewSession) GetSessionSummary() SessionSummary {
	return s.Logger.GetSessionSummary()
}

// GetActionBreakdown returns a breakdown of actions used in this session
func (s *ReviewSession) GetActionBreakdown() map[string]int {
	return s.Logger.GetActionBreakdown()
}

// Close properly closes the session
func (s *ReviewSession) Close() error {
	return s.Logger.Close()
}
