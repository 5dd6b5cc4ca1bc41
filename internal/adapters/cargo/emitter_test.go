package cargo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/cargo"
)

func TestEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	e := cargo.NewEmitter(&buf)

	require.NoError(t, e.Emit("lua", "/out/lua-5.3.0/src"))

	want := "cargo:rustc-link-lib=static=lua\n" +
		"cargo:rustc-link-search=native=/out/lua-5.3.0/src\n"
	require.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestEmitter_WriteFailure(t *testing.T) {
	e := cargo.NewEmitter(failingWriter{})
	require.Error(t, e.Emit("lua", "/out"))
}
