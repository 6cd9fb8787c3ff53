package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/contacts-api/internal/metrics"
)

// requestLines returns the decoded "http request" lines written to buf.
func requestLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line), sc.Text())
		if line["message"] == "http request" {
			out = append(out, line)
		}
	}
	return out
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRequestLoggerStatus(t *testing.T) {
	cases := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   string
	}{
		{"ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, http.StatusOK, "info"},
		{"unauthorized", func(echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}, http.StatusUnauthorized, "warn"},
		{"internal", func(echo.Context) error { return errors.New("db down") }, http.StatusInternalServerError, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(zerolog.New(&buf)))
			e.GET("/x", tc.handler)

			rec := serve(e, "/x")
			assert.Equal(t, tc.status, rec.Code)

			lines := requestLines(t, &buf)
			require.Len(t, lines, 1)
			assert.EqualValues(t, tc.status, lines[0]["status"])
			assert.Equal(t, tc.level, lines[0]["level"])
		})
	}
}

func TestRequestLoggerWithMetricsKeepsError(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New()
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)), Metrics(m))
	e.GET("/x", func(echo.Context) error { return errors.New("db down") })

	rec := serve(e, "/x")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	lines := requestLines(t, &buf)
	require.Len(t, lines, 1)
	assert.EqualValues(t, http.StatusInternalServerError, lines[0]["status"])
	assert.Equal(t, "db down", lines[0]["error"])

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `route="/x",status="500"} 1`)
}
