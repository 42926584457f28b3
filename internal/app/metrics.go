package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nleiva/codesensei/pkg/engine"
)

// SessionMetrics tracks metrics for a single review session
type SessionMetrics struct {
	SessionID     string              `json:"session_id"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       *time.Time          `json:"end_time,omitempty"`
	TotalRequests int                 `json:"total_requests"`
	ActionCounts  map[string]int      `json:"action_counts"`
	Interactions  []InteractionMetric `json:"interactions"`
	SessionType   string              `json:"session_type"` // "web", "cli", "direct"
}

// InteractionMetric tracks a single dispatch cycle
type InteractionMetric struct {
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	CodeBytes    int       `json:"code_bytes"`
	PromptBytes  int       `json:"prompt_bytes"`
	ResponseTime int64     `json:"response_time_ms"`
	Warning      bool      `json:"warning"` // true when the report was an empty-input warning
}

// MetricsLogger records dispatches for one session and appends them to
// a JSONL file. A nil log file means in-memory tracking only.
type MetricsLogger struct {
	mu      sync.Mutex
	session *SessionMetrics
	logFile *os.File
}

// NewMetricsLogger creates a metrics logger writing to logsDir. An
// empty logsDir disables the file and keeps metrics in memory only.
func NewMetricsLogger(sessionID, sessionType, logsDir string) (*MetricsLogger, error) {
	session := &SessionMetrics{
		SessionID:    sessionID,
		StartTime:    time.Now(),
		SessionType:  sessionType,
		ActionCounts: make(map[string]int),
		Interactions: make([]InteractionMetric, 0),
	}

	ml := &MetricsLogger{session: session}

	if logsDir == "" {
		return ml, nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFileName := filepath.Join(logsDir, fmt.Sprintf("session_%s_%s.jsonl",
		time.Now().Format("2006-01-02"), sessionID))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	ml.logFile = logFile
	return ml, nil
}

// LogInteraction records a single dispatch
func (ml *MetricsLogger) LogInteraction(action engine.Action, codeBytes, promptBytes int, responseTime time.Duration, warning bool) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	interaction := InteractionMetric{
		Timestamp:    time.Now(),
		Action:       string(action),
		CodeBytes:    codeBytes,
		PromptBytes:  promptBytes,
		ResponseTime: responseTime.Milliseconds(),
		Warning:      warning,
	}

	ml.session.TotalRequests++
	ml.session.ActionCounts[string(action)]++
	ml.session.Interactions = append(ml.session.Interactions, interaction)

	if ml.logFile == nil {
		return
	}
	if logLine, err := json.Marshal(interaction); err == nil {
		ml.logFile.WriteString(string(logLine) + "\n")
		ml.logFile.Sync()
	}
}

// GetSessionSummary returns a summary of the current session
func (ml *MetricsLogger) GetSessionSummary() SessionSummary {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	duration := time.Since(ml.session.StartTime)

	avgResponseTime := int64(0)
	if len(ml.session.Interactions) > 0 {
		var totalTime int64
		for _, interaction := range ml.session.Interactions {
			totalTime += interaction.ResponseTime
		}
		avgResponseTime = totalTime / int64(len(ml.session.Interactions))
	}

	return SessionSummary{
		Duration:        duration,
		TotalRequests:   ml.session.TotalRequests,
		AvgResponseTime: avgResponseTime,
		SessionType:     ml.session.SessionType,
	}
}

// GetActionBreakdown returns a copy of the per-action dispatch counts
func (ml *MetricsLogger) GetActionBreakdown() map[string]int {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	breakdown := make(map[string]int, len(ml.session.ActionCounts))
	for action, count := range ml.session.ActionCounts {
		breakdown[action] = count
	}
	return breakdown
}

// Close finalizes the session and closes the log file
func (ml *MetricsLogger) Close() error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := time.Now()
	ml.session.EndTime = &now

	if ml.logFile == nil {
		return nil
	}

	// Write final session summary
	if sessionData, err := json.Marshal(ml.session); err == nil {
		ml.logFile.WriteString("SESSION_SUMMARY: " + string(sessionData) + "\n")
	}

	return ml.logFile.Close()
}

// SessionSummary provides a summary of session metrics
type SessionSummary struct {
	Duration        time.Duration
	TotalRequests   int
	AvgResponseTime int64
	SessionType     string
}

// GenerateSessionID creates a unique session ID based on the mode and current time
func GenerateSessionID(mode string) string {
	return fmt.Sprintf("%s_%d", mode, time.Now().UnixNano())
}
