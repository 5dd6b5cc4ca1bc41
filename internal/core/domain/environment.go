package domain

import "path"

// Library describes the external C library the pipeline provisions. The
// zero-value-friendly defaults are filled in by DefaultLibrary; a host
// project may override them through its prebuild.yaml descriptor.
type Library struct {
	// Name is the library's link name (the X in -lX).
	Name string
	// Version is the upstream version, used to derive archive and tree names.
	Version string
	// URL is the source archive download location.
	URL string
	// LibFile is the static archive path relative to the source tree.
	LibFile string
	// GlueSource is the glue helper C source, relative to the consuming
	// project's root (the directory the tool is invoked from).
	GlueSource string
	// GlueOutput is the generated binding source filename, placed at the
	// build root.
	GlueOutput string
}

// DefaultLibrary returns the built-in Lua 5.3.0 descriptor.
func DefaultLibrary() Library {
	return Library{
		Name:       "lua",
		Version:    "5.3.0",
		URL:        "http://www.lua.org/ftp/lua-5.3.0.tar.gz",
		LibFile:    "src/liblua.a",
		GlueSource: "src/glue/glue.c",
		GlueOutput: "glue.rs",
	}
}

// ArchiveName returns the archive filename, the base segment of the URL.
func (l Library) ArchiveName() string {
	return path.Base(l.URL)
}

// SourceDirName returns the name of the extracted source tree.
func (l Library) SourceDirName() string {
	return l.Name + "-" + l.Version
}

// BuildEnvironment is the immutable configuration snapshot read once at
// startup. It is owned by the pipeline for its whole run and never mutated;
// no component reads ambient process state after it is constructed.
type BuildEnvironment struct {
	// Root is the build-scoped output directory all artifacts live under.
	Root string
	// Target is the target triple the final archive is built for.
	Target string
	// HostOS is the operating system the tool itself runs on.
	HostOS string
	// Compiler is the toolchain C compiler name, defaulted if not overridden.
	Compiler string
	// Library is the library descriptor.
	Library Library
}
