package domain

import "time"

// RunInfo records what the last successful pipeline run produced. It is
// written to the build root for inspection only and is never consulted when
// deciding whether a stage can be skipped.
type RunInfo struct {
	Target         string    `json:"target"`
	HostPlatform   string    `json:"host_platform"`
	TargetPlatform string    `json:"target_platform"`
	Compiler       string    `json:"compiler"`
	ArchiveDigest  string    `json:"archive_digest,omitempty"`
	CompletedAt    time.Time `json:"completed_at"`
}
