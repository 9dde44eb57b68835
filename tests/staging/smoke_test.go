//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

type previewResponse struct {
	Seed int64 `json:"seed"`
	Item struct {
		KindName string `json:"kind_name"`
		Name     string `json:"name"`
	} `json:"item"`
}

func TestPreviewItem(t *testing.T) {
	reqBody := map[string]interface{}{
		"kind":      "Long Sword",
		"potential": 5000,
		"seed":      17,
	}
	resp, body := makeRequest(t, "POST", "/api/v1/preview", reqBody)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var preview previewResponse
	if err := json.Unmarshal(body, &preview); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if preview.Seed != 17 {
		t.Errorf("Expected seed 17, got %d", preview.Seed)
	}
	if preview.Item.KindName != "Long Sword" {
		t.Errorf("Expected kind 'Long Sword', got %q", preview.Item.KindName)
	}
	if preview.Item.Name == "" {
		t.Error("Expected a non-empty item name")
	}
}

func TestGenerateAndFetchRun(t *testing.T) {
	reqBody := map[string]interface{}{
		"seed":      99,
		"count":     3,
		"max_depth": 40,
	}
	resp, body := makeRequest(t, "POST", "/api/v1/runs/", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, body)
	}

	var created struct {
		RunID string `json:"run_id"`
		Seed  int64  `json:"seed"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if created.RunID == "" {
		t.Fatal("Expected a run ID")
	}
	if created.Count != 3 {
		t.Errorf("Expected 3 items, got %d", created.Count)
	}

	resp, body = makeRequest(t, "GET", fmt.Sprintf("/api/v1/runs/%s", created.RunID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var run struct {
		ID    string            `json:"id"`
		Seed  int64             `json:"seed"`
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &run); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if run.ID != created.RunID {
		t.Errorf("Expected run %s, got %s", created.RunID, run.ID)
	}
	if len(run.Items) != 3 {
		t.Errorf("Expected 3 stored items, got %d", len(run.Items))
	}
}

func TestPreviewRejectsUnknownKind(t *testing.T) {
	reqBody := map[string]interface{}{
		"kind":      "Vorpal Spork",
		"potential": 1000,
	}
	resp, _ := makeRequest(t, "POST", "/api/v1/preview", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
