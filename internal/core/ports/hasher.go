package ports

// Hasher computes content digests for diagnostics. Digests are recorded in
// the run-state file; cache decisions stay presence-based.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// FileDigest returns a hex digest of the file's content.
	FileDigest(path string) (string, error)
}
