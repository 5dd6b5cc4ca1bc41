package domain

// ArtifactKind names an on-disk marker whose presence means a pipeline stage
// has already completed. The filesystem state is the cache: markers are
// checked, never tracked in memory, and survive process restarts.
type ArtifactKind int

const (
	// ArtifactArchive is the downloaded source archive.
	ArtifactArchive ArtifactKind = iota
	// ArtifactStaticLib is the compiled static archive inside the source tree.
	ArtifactStaticLib
	// ArtifactGlueSource is the generated binding source at the build root.
	ArtifactGlueSource
)

// String returns a short name for the artifact kind, used in logs.
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactArchive:
		return "archive"
	case ArtifactStaticLib:
		return "static-lib"
	case ArtifactGlueSource:
		return "glue-source"
	default:
		return "unknown"
	}
}
