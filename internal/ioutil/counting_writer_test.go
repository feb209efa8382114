package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/urin/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if room := w.limit - w.buf.Len(); len(p) > room {
		w.buf.Write(p[:room])
		return room, errWrite
	}
	return w.buf.Write(p)
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http") //nolint:errcheck
	cw.Write([]byte("://")) //nolint:errcheck
	cw.Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "example.com")
	})

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if got, want := num, len("http://example.com"); got != want {
		t.Errorf("cw.Result() num = %d, want %d", got, want)
	}
	if got, want := sb.String(), "http://example.com"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	w := &limitWriter{limit: 6}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http:") //nolint:errcheck
	if _, err := cw.WriteString("//host"); !errors.Is(err, errWrite) {
		t.Fatalf("cw.WriteString() error = %v, want %v", err, errWrite)
	}
	called := false
	cw.Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	})
	if called {
		t.Error("cw.Call() invoked fn after a write error")
	}

	num, err := cw.Result()
	if !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWrite)
	}
	if got, want := num, 6; got != want {
		t.Errorf("cw.Result() num = %d, want %d", got, want)
	}
	if got, want := w.buf.String(), "http:/"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
}
