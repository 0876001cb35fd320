package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/apex/log"
)

func TestSetupWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupWriter(&buf, "info", true); err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.WithField("moves", 30).Info("generated")
	log.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected exactly one json line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "generated" {
		t.Fatalf("message: got=%v", entry["message"])
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := SetupWriter(&bytes.Buffer{}, "loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
