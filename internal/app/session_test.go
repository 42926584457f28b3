package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nleiva/codesensei/pkg/engine"
)

func newTestSession(t *testing.T) *ReviewSession {
	t.Helper()

	session, err := NewReviewSession(SessionConfig{
		ID:          GenerateSessionID("test"),
		SessionType: "test",
		Delay:       0,
		LogDir:      "", // in-memory metrics only
	})
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func TestRunActionStoresLatestReport(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()

	assert.Nil(t, session.LastReport())

	resp := session.RunAction(ctx, engine.ActionAnalyze, "a\nb\nc", "")
	require.NotNil(t, resp)
	assert.Contains(t, resp.Report.Text, "Lines of code: 3")
	assert.False(t, resp.Warning)

	last := session.LastReport()
	require.NotNil(t, last)
	assert.Equal(t, resp.Report.Text, last.Text)

	// A second dispatch supersedes the first, last-result-wins.
	session.RunAction(ctx, engine.ActionDebug, "x = 1", "")
	assert.Equal(t, engine.ActionDebug, session.LastReport().Action)
}

func TestRunActionFlagsEmptyInputWarnings(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()

	resp := session.RunAction(ctx, engine.ActionImprove, "   ", "ignored")
	assert.True(t, resp.Warning)
	assert.Equal(t, "No code provided. Please paste code to improve.", resp.Report.Text)

	resp = session.RunAction(ctx, engine.ActionWrite, "ignored", " ")
	assert.True(t, resp.Warning)
}

func TestSessionMetricsBreakdown(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()

	session.RunAction(ctx, engine.ActionAnalyze, "x", "")
	session.RunAction(ctx, engine.ActionAnalyze, "y", "")
	session.RunAction(ctx, engine.ActionWrite, "", "a prompt")

	summary := session.GetSessionSummary()
	assert.Equal(t, 3, summary.TotalRequests)
	assert.Equal(t, "test", summary.SessionType)

	breakdown := session.GetActionBreakdown()
	assert.Equal(t, 2, breakdown["analyze"])
	assert.Equal(t, 1, breakdown["write"])
}

func TestSessionReset(t *testing.T) {
	session := newTestSession(t)

	session.RunAction(context.Background(), engine.ActionRefactor, "x", "")
	require.NotNil(t, session.LastReport())

	session.Reset()
	assert.Nil(t, session.LastReport())
}

func TestMetricsLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()

	session, err := NewReviewSession(SessionConfig{
		ID:          "file_test",
		SessionType: "test",
		Delay:       0,
		LogDir:      dir,
	})
	require.NoError(t, err)

	session.RunAction(context.Background(), engine.ActionDebug, "x = 1", "")
	require.NoError(t, session.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"action":"debug"`)
	assert.Contains(t, content, "SESSION_SUMMARY: ")
	assert.Equal(t, 2, strings.Count(content, "\n"))
}
