package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/veritext/veritext/internal/api"
)

const formalText = "Furthermore, it is important to note that the landscape of modern " +
	"technology continues to evolve. Moreover, one must delve into the realm of " +
	"artificial intelligence to understand its implications. Therefore, it is crucial " +
	"that we consider these developments carefully."

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	api.NewHandler(nil).RegisterRoutes(mux)
	return mux
}

func postDetect(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/detect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body["error"]
}

func TestHandleDetect_ValidationFailures(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "invalid json",
			body:    "{not json",
			wantMsg: "invalid request body",
		},
		{
			name:    "empty text",
			body:    `{"text": ""}`,
			wantMsg: "Text cannot be empty",
		},
		{
			name:    "whitespace only",
			body:    `{"text": "   \n  "}`,
			wantMsg: "Text cannot be empty",
		},
		{
			name:    "under ten characters",
			body:    `{"text": "hi there"}`,
			wantMsg: "Text too short for analysis (minimum 10 characters)",
		},
		{
			name:    "under twenty words",
			body:    `{"text": "a handful of words is not enough for a verdict"}`,
			wantMsg: "Text is too short for reliable detection",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postDetect(t, mux, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg := decodeError(t, rec); !strings.Contains(msg, tc.wantMsg) {
				t.Errorf("error %q does not contain %q", msg, tc.wantMsg)
			}
		})
	}
}

func TestHandleDetect_Success(t *testing.T) {
	payload, err := json.Marshal(map[string]string{"text": formalText})
	if err != nil {
		t.Fatal(err)
	}

	rec := postDetect(t, newTestMux(), string(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp struct {
		IsAIGenerated    bool               `json:"is_ai_generated"`
		Confidence       float64            `json:"confidence"`
		HumanProbability float64            `json:"human_probability"`
		AIProbability    float64            `json:"ai_probability"`
		Explanation      string             `json:"explanation"`
		Features         map[string]float64 `json:"features"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if !resp.IsAIGenerated {
		t.Error("expected AI verdict for formal text")
	}
	if resp.AIProbability <= 0.5 {
		t.Errorf("expected ai_probability > 0.5, got %f", resp.AIProbability)
	}
	if resp.Confidence != resp.AIProbability {
		t.Errorf("confidence %f should equal the larger probability %f",
			resp.Confidence, resp.AIProbability)
	}
	if resp.Explanation == "" {
		t.Error("expected a non-empty explanation")
	}
	for _, key := range []string{"word_count", "lexical_diversity", "ai_phrase_count"} {
		if _, ok := resp.Features[key]; !ok {
			t.Errorf("expected feature %q in response", key)
		}
	}
}

func TestHandleDetect_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest("GET", "/detect", nil)
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %q", body["status"])
	}
	if body["algorithm"] != "rule-based-enhanced" {
		t.Errorf("expected rule-based-enhanced algorithm, got %q", body["algorithm"])
	}
}

func TestHandleRoot(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Version != api.Version {
		t.Errorf("expected version %q, got %q", api.Version, body.Version)
	}
	if _, ok := body.Endpoints["/detect"]; !ok {
		t.Error("expected /detect in the endpoint map")
	}
}
