package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of files for the run-state record.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// FileDigest returns the XXHash of the file's content as a hex string.
func (h *Hasher) FileDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is derived from the build layout
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrIO, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrIO, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
