package util

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWaitForEnter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"newline", "\n", false},
		{"text then newline", "anything\nmore\n", false},
		{"eof", "", false},
		{"eof without newline", "partial", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WaitForEnter(context.Background(), strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("WaitForEnter() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWaitForEnterNilReader(t *testing.T) {
	if err := WaitForEnter(context.Background(), nil); err != nil {
		t.Errorf("WaitForEnter(nil) = %v", err)
	}
}

func TestWaitForEnterReadError(t *testing.T) {
	if err := WaitForEnter(context.Background(), failingReader{}); err == nil {
		t.Error("WaitForEnter() succeeded on a failing reader")
	}
}

func TestWaitForEnterCancelled(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		done <- WaitForEnter(ctx, r)
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("WaitForEnter() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForEnter() ignored the cancelled context")
	}
}
