package domain

import "path/filepath"

// Layout computes the filesystem locations of every pipeline artifact under
// the build root. All paths are derived, never stored.
type Layout struct {
	root string
	lib  Library
}

// NewLayout returns the layout for a build root and library descriptor.
func NewLayout(root string, lib Library) Layout {
	return Layout{root: root, lib: lib}
}

// Root returns the build root directory.
func (l Layout) Root() string {
	return l.root
}

// ArchivePath returns the downloaded archive location.
func (l Layout) ArchivePath() string {
	return filepath.Join(l.root, l.lib.ArchiveName())
}

// SourceDir returns the extracted source tree location.
func (l Layout) SourceDir() string {
	return filepath.Join(l.root, l.lib.SourceDirName())
}

// StaticLibPath returns the compiled static archive location inside the
// source tree.
func (l Layout) StaticLibPath() string {
	return filepath.Join(l.SourceDir(), filepath.FromSlash(l.lib.LibFile))
}

// SearchDir returns the directory containing the static archive, emitted as
// the native library search path.
func (l Layout) SearchDir() string {
	return filepath.Dir(l.StaticLibPath())
}

// IncludeDir returns the header directory the glue helper compiles against.
func (l Layout) IncludeDir() string {
	return filepath.Join(l.SourceDir(), "src")
}

// GlueOutputPath returns the generated binding source location at the build
// root.
func (l Layout) GlueOutputPath() string {
	return filepath.Join(l.root, l.lib.GlueOutput)
}

// HelperPath returns the compiled glue helper executable location. The
// helper is transient and is not a cache marker.
func (l Layout) HelperPath() string {
	return filepath.Join(l.root, "glue")
}

// StatePath returns the run-state file location.
func (l Layout) StatePath() string {
	return filepath.Join(l.root, "prebuild-state.json")
}

// ArtifactPath returns the marker path for an artifact kind.
func (l Layout) ArtifactPath(kind ArtifactKind) string {
	switch kind {
	case ArtifactArchive:
		return l.ArchivePath()
	case ArtifactStaticLib:
		return l.StaticLibPath()
	case ArtifactGlueSource:
		return l.GlueOutputPath()
	default:
		return ""
	}
}
