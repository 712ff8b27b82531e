package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewWithWriter_EmitsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Info("Request completed", "path", "/health", "status", 200)

	entry := decodeLine(t, &buf)
	if entry["message"] != "Request completed" {
		t.Errorf("Expected message 'Request completed', got %v", entry["message"])
	}
	if entry["path"] != "/health" {
		t.Errorf("Expected path '/health', got %v", entry["path"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("Expected status 200, got %v", entry["status"])
	}
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped too")

	if buf.Len() != 0 {
		t.Errorf("Expected no output below warn level, got %q", buf.String())
	}
}

func TestLogger_ErrorValueRenderedAsString(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Error("Request failed", "error", errors.New("boom"))

	entry := decodeLine(t, &buf)
	if entry["error"] != "boom" {
		t.Errorf("Expected error field 'boom', got %v", entry["error"])
	}
}

func TestLogger_WithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel).With("request_id", "req-1")

	logger.Info("hello")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "req-1" {
		t.Errorf("Expected request_id 'req-1', got %v", entry["request_id"])
	}
}

func TestContext_LoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("Expected the stored logger back from context")
	}
}

func TestContext_FallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) != global {
		t.Error("Expected global logger for a bare context")
	}
}

func TestContext_RequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")

	if got := RequestIDFromContext(ctx); got != "req-42" {
		t.Errorf("Expected request ID 'req-42', got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("Expected empty request ID for bare context, got %q", got)
	}
}
