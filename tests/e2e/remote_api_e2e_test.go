//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Run against a server started with NARRATIVE_DRIVER=scripted so turns are
// deterministic.
func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://127.0.0.1:8080"), "/")
	playerID := envOr("E2E_PLAYER_ID", "e2e-"+time.Now().UTC().Format("20060102150405"))
	client := &http.Client{Timeout: 120 * time.Second}

	t.Run("state requires player header", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/game/state", "", nil)
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("options", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/game/options", "", nil)
		if status != http.StatusOK {
			t.Fatalf("options status=%d body=%s", status, string(body))
		}
	})

	t.Run("begin choose save load journal ops", func(t *testing.T) {
		_, _ = mustJSON(t, client, http.MethodPost, baseURL+"/api/game/reset", playerID, map[string]any{})

		setup := map[string]any{
			"name":   "E2E Rookie",
			"outfit": map[string]any{"name": "Straw Hat", "description": "lucky"},
			"weapon": map[string]any{"name": "Nodachi", "description": "long"},
			"path":   "Pirate",
			"gender": "Non-binary",
			"origin": "East Blue",
		}
		status, beginBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/game/begin", playerID, setup)
		if status != http.StatusOK {
			t.Fatalf("begin status=%d body=%s", status, string(beginBody))
		}
		var begun map[string]any
		if err := json.Unmarshal(beginBody, &begun); err != nil {
			t.Fatalf("unmarshal begin: %v body=%s", err, string(beginBody))
		}
		choices := asSlice(asMap(asMap(asMap(begun["status"])["state"])["scene"])["choices"])
		if len(choices) < 6 {
			t.Fatalf("expected at least 6 choices, got %d", len(choices))
		}
		choiceID := asMap(choices[0])["id"]

		status, chooseBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/game/choose", playerID, map[string]any{"choice_id": choiceID})
		if status != http.StatusOK {
			t.Fatalf("choose status=%d body=%s", status, string(chooseBody))
		}

		status, saveBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/game/save", playerID, map[string]any{})
		if status != http.StatusOK {
			t.Fatalf("save status=%d body=%s", status, string(saveBody))
		}
		status, loadBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/game/load", playerID, map[string]any{})
		if status != http.StatusOK {
			t.Fatalf("load status=%d body=%s", status, string(loadBody))
		}

		status, journalBody := mustJSON(t, client, http.MethodGet, baseURL+"/api/game/journal?limit=20", playerID, nil)
		if status != http.StatusOK {
			t.Fatalf("journal status=%d body=%s", status, string(journalBody))
		}
		var rep map[string]any
		if err := json.Unmarshal(journalBody, &rep); err != nil {
			t.Fatalf("unmarshal journal response: %v body=%s", err, string(journalBody))
		}
		if len(asSlice(rep["entries"])) == 0 {
			t.Fatalf("expected journal entries in response")
		}

		status, kpiBody := mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", "", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(kpiBody))
		}
		var kpi map[string]any
		if err := json.Unmarshal(kpiBody, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v body=%s", err, string(kpiBody))
		}
		if _, ok := kpi["turn_total"]; !ok {
			t.Fatalf("expected turn_total in kpi response")
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url, playerID string, body map[string]any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, playerID, body)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url, playerID string, body map[string]any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if strings.TrimSpace(playerID) != "" {
			req.Header.Set("X-Player-ID", playerID)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
