// Package runlog keeps an append-only JSONL record of generation runs,
// one event per processed CSV file.
package runlog

import (
	"encoding/json"
	"os"
	"sync"
)

// Event is one processed input file's outcome.
type Event struct {
	Timestamp   string `json:"timestamp"`
	Input       string `json:"input"`
	Format      string `json:"format,omitempty"`
	Rules       int    `json:"rules"`
	Techniques  int    `json:"techniques"`
	Tactics     int    `json:"tactics"`
	SkippedRows int    `json:"skipped_rows,omitempty"`
	Output      string `json:"output,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Logger appends events to a JSONL file.
type Logger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &Logger{file: file}, nil
}

func (l *Logger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
