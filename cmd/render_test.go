package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// failingCloser buffers writes and returns closeErr from Close
type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	wc := &failingCloser{closeErr: diskFull}

	err := writeAndClose(wc, func(w io.Writer) error {
		_, err := io.WriteString(w, "P3\n")
		return err
	})
	if !errors.Is(err, diskFull) {
		t.Fatalf("Expected the close error, got %v", err)
	}
	if !wc.closed {
		t.Error("Expected the writer to be closed")
	}
}

func TestWriteAndClosePrefersWriteError(t *testing.T) {
	writeFailed := errors.New("write failed")
	wc := &failingCloser{closeErr: errors.New("close failed")}

	err := writeAndClose(wc, func(w io.Writer) error { return writeFailed })
	if !errors.Is(err, writeFailed) {
		t.Fatalf("Expected the write error, got %v", err)
	}
	if !wc.closed {
		t.Error("Expected the writer to be closed after a failed write")
	}
}

func TestWriteFrame(t *testing.T) {
	frame := renderer.NewFrame(2, 1)

	var stdout bytes.Buffer
	if err := writeFrame(frame, "-", FormatPPM, &stdout); err != nil {
		t.Fatalf("writeFrame to stdout: %v", err)
	}
	if want := "P3\n2 1\n255\n0 0 0\n0 0 0\n"; stdout.String() != want {
		t.Errorf("Expected %q on stdout, got %q", want, stdout.String())
	}

	path := filepath.Join(t.TempDir(), "frame.ppm")
	if err := writeFrame(frame, path, FormatPPM, &stdout); err != nil {
		t.Fatalf("writeFrame to file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 1\n") {
		t.Errorf("Unexpected file contents %q", data)
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "frame.ppm")
	if err := writeFrame(frame, missingDir, FormatPPM, &stdout); err == nil {
		t.Error("Expected an error creating a file in a missing directory")
	}
}
