package runlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLog_AppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	logger, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	events := []Event{
		{Timestamp: "2026-03-14T09:26:53Z", Input: "a.csv", Rules: 3, Techniques: 5, Tactics: 2, Output: "layers/layer_a.json"},
		{Timestamp: "2026-03-14T09:27:10Z", Input: "b.csv", Error: "no known column layout matched"},
	}
	for _, event := range events {
		if err := logger.Log(event); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var decoded []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line is not valid JSON: %v", err)
		}
		decoded = append(decoded, event)
	}

	if len(decoded) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(decoded))
	}
	if decoded[0].Input != "a.csv" || decoded[0].Rules != 3 {
		t.Errorf("unexpected first event: %+v", decoded[0])
	}
	if decoded[1].Error == "" {
		t.Errorf("expected error recorded in second event: %+v", decoded[1])
	}
}

func TestNew_AppendsAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	for i := 0; i < 2; i++ {
		logger, err := New(path)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := logger.Log(Event{Input: "a.csv"}); err != nil {
			t.Fatalf("Log: %v", err)
		}
		logger.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("expected 2 lines after reopen, got %d", lines)
	}
}
