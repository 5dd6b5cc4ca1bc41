// Package cargo emits cargo-style link directives for the host build system.
package cargo

import (
	"fmt"
	"io"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LinkEmitter = (*Emitter)(nil)

// Emitter writes the two directive lines the host build system understands:
// link statically against the library, and add the archive's directory to
// the native search path. Exactly these two lines are the stdout contract.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes the link-lib and link-search directives.
func (e *Emitter) Emit(lib, searchDir string) error {
	if _, err := fmt.Fprintf(e.w, "cargo:rustc-link-lib=static=%s\n", lib); err != nil {
		return zerr.Wrap(domain.ErrIO, "failed to emit link directive")
	}
	if _, err := fmt.Fprintf(e.w, "cargo:rustc-link-search=native=%s\n", searchDir); err != nil {
		return zerr.Wrap(domain.ErrIO, "failed to emit search directive")
	}
	return nil
}
