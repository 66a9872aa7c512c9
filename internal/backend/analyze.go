package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"harmonyminds/internal/analysis"
)

// DefaultAnalyzeMessage is used when a failed response explains nothing.
const DefaultAnalyzeMessage = "Failed to analyze playlist"

// errorFields are consulted in order for a failure message.
var errorFields = []string{"error", "details", "message"}

// AnalyzeError is a non-2xx answer from the analyze endpoint.
type AnalyzeError struct {
	StatusCode int
	Message    string
}

func (e *AnalyzeError) Error() string {
	return e.Message
}

type analyzeRequest struct {
	PlaylistURL string `json:"playlist_url"`
}

// AnalyzePlaylist submits a playlist URL or ID and returns the backend's
// analysis. The success body is decoded without further validation.
func (c *Client) AnalyzePlaylist(ctx context.Context, identifier string) (analysis.PlaylistAnalysis, error) {
	var result analysis.PlaylistAnalysis

	payload, err := json.Marshal(analyzeRequest{PlaylistURL: identifier})
	if err != nil {
		return result, fmt.Errorf("backend: encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("backend: create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("backend: POST /analyze: %w", err)
	}
	defer resp.Body.Close()

	if !ok(resp) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return result, &AnalyzeError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(body, reasonPhrase(resp)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("backend: decode analysis: %w", err)
	}
	return result, nil
}

// failureMessage picks the first truthy of error, details and message from a
// JSON body, then the status reason, then the fixed fallback.
func failureMessage(body []byte, reason string) string {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		for _, field := range errorFields {
			if msg, ok := truthy(parsed.Get(field)); ok {
				return msg
			}
		}
	}
	if reason != "" {
		return reason
	}
	return DefaultAnalyzeMessage
}

func truthy(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, r.Str != ""
	case gjson.Number:
		return r.Raw, r.Num != 0
	case gjson.True:
		return "true", true
	case gjson.JSON:
		return r.Raw, true
	default:
		return "", false
	}
}

// reasonPhrase returns the text after the code in the status line, which is
// empty over HTTP/2.
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
