package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"anarchyauth/internal/logging"
)

func TestSanitizer_RedactsKeyMaterial(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, logging.Options{Format: logging.FormatJSON})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("derived", "private_key", "deadbeef", "seed", "cafe", "method", "iris_biometric")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["private_key"] != "[REDACTED]" || rec["seed"] != "[REDACTED]" {
		t.Fatalf("key material leaked: %v", rec)
	}
	if rec["method"] != "iris_biometric" {
		t.Fatalf("ordinary attribute altered: %v", rec)
	}
}

func TestSanitizer_FingerprintsSessionIDs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, logging.Options{Format: logging.FormatJSON})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.With("session_id", "0123456789abcdef").Info("signed")

	out := buf.String()
	if strings.Contains(out, "0123456789abcdef") {
		t.Fatalf("raw session id written: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	fp, _ := rec["session_id_fp"].(string)
	if fp != logging.FingerprintID("0123456789abcdef") || !strings.HasPrefix(fp, "fp_") {
		t.Fatalf("session_id_fp = %q", fp)
	}
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, logging.Options{Level: "warn", Format: logging.FormatJSON})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info written at warn level: %s", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn not written: %q", buf.String())
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, logging.Options{Level: "debug", Format: "text"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hello", "token", "abc")
	out := buf.String()
	if !strings.Contains(out, "hello") || strings.Contains(out, "abc") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestNew_RejectsUnknownOptions(t *testing.T) {
	if _, err := logging.New(&bytes.Buffer{}, logging.Options{Level: "loud"}); err == nil {
		t.Fatal("unknown level accepted")
	}
	if _, err := logging.New(&bytes.Buffer{}, logging.Options{Format: "xml"}); err == nil {
		t.Fatal("unknown format accepted")
	}
}
