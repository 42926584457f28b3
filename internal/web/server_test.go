package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nleiva/codesensei/pkg/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(&config.Config{
		Delay:  0, // no artificial pause in tests
		Port:   config.DefaultPort,
		LogDir: "",
	})
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestHomePage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, `name="code"`)
	assert.Contains(t, html, `name="prompt"`)
	for _, action := range []string{"analyze", "write", "improve", "refactor", "debug", "expand"} {
		assert.Contains(t, html, `value="`+action+`"`)
	}
}

func TestActionAnalyze(t *testing.T) {
	s := newTestServer(t)

	resp := postForm(t, s, "/action", url.Values{
		"action": {"analyze"},
		"code":   {"a\nb\nc"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "Lines of code: 3")
	assert.Contains(t, html, `class="report"`)
}

func TestActionEmptyCodeReturnsWarningFragment(t *testing.T) {
	s := newTestServer(t)

	resp := postForm(t, s, "/action", url.Values{
		"action": {"debug"},
		"code":   {"   "},
		"prompt": {"still ignored"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "No code provided. Please paste code to debug.")
	assert.Contains(t, html, `class="report warning"`)
}

func TestActionWriteEchoesPrompt(t *testing.T) {
	s := newTestServer(t)

	resp := postForm(t, s, "/action", url.Values{
		"action": {"write"},
		"prompt": {"make a button"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "make a button")
}

func TestActionUnknown(t *testing.T) {
	s := newTestServer(t)

	resp := postForm(t, s, "/action", url.Values{
		"action": {"summarize"},
		"code":   {"x"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResetReturnsWelcome(t *testing.T) {
	s := newTestServer(t)

	resp := postForm(t, s, "/reset", url.Values{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "welcome-screen")
}

func TestStatusJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	payload := body(t, resp)
	assert.Contains(t, payload, `"total_requests"`)
	assert.Contains(t, payload, `"actions"`)
}

func TestFavicon(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
