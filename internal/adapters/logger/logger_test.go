package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		// Created inside the capture so it binds the redirected stderr.
		lg := logger.New()
		lg.Info("some message")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		wants []string
	}{
		{
			name:  "info with attrs",
			log:   func(l *logger.Logger) { l.Info("profile built", "profile", "Client Dev") },
			wants: []string{"INFO", "profile built", `profile="Client Dev"`},
		},
		{
			name:  "warn",
			log:   func(l *logger.Logger) { l.Warn("skipping dangling profile reference", "index", 2) },
			wants: []string{"WARN", "skipping dangling profile reference", "index=2"},
		},
		{
			name:  "error",
			log:   func(l *logger.Logger) { l.Error(os.ErrPermission, "severity", "fatal") },
			wants: []string{"ERROR", "permission denied", "severity=fatal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewWithWriter(&buf))
			for _, want := range tt.wants {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.SetLevel(slog.LevelWarn)
	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.SetOutput(&second)
	lg.Error(errors.New("boom"))

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "boom")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf).With("collection", "nightly")

	lg.Info("batch started")

	assert.Contains(t, buf.String(), "collection=nightly")
}
