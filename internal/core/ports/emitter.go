package ports

// LinkEmitter declares link metadata to the host build system. Emission is
// unconditional: the directives must be re-declared on every invocation
// regardless of whether the underlying artifacts were rebuilt.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type LinkEmitter interface {
	// Emit writes the link-statically and search-path directives for the
	// named library and its containing directory.
	Emit(lib, searchDir string) error
}
