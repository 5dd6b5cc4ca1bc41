package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies one of the native-build platforms the library's own
// build system knows about. The string value doubles as the make target.
type Platform string

const (
	// PlatformMinGW is the Windows/MinGW build.
	PlatformMinGW Platform = "mingw"
	// PlatformMacOSX is the macOS build.
	PlatformMacOSX Platform = "macosx"
	// PlatformLinux is the Linux build.
	PlatformLinux Platform = "linux"
	// PlatformFreeBSD is the FreeBSD build.
	PlatformFreeBSD Platform = "freebsd"
	// PlatformBSD is the generic BSD build, used for DragonFly.
	PlatformBSD Platform = "bsd"
)

// FromHostOS maps a host operating system identifier (as reported by
// runtime.GOOS) to a Platform. Both "darwin" and "macos" resolve to the
// macOS platform. Any other value is an unsupported-platform failure: no
// native build is possible on such a host.
func FromHostOS(hostOS string) (Platform, error) {
	switch hostOS {
	case "windows":
		return PlatformMinGW, nil
	case "darwin", "macos":
		return PlatformMacOSX, nil
	case "linux":
		return PlatformLinux, nil
	case "freebsd":
		return PlatformFreeBSD, nil
	case "dragonfly":
		return PlatformBSD, nil
	default:
		return "", zerr.With(ErrUnsupportedPlatform, "host_os", hostOS)
	}
}

// FromTargetTriple extracts the OS segment of an arch-vendor-os(-env) target
// identifier and maps it to a Platform. A triple with fewer than three
// dash-separated segments, or an unrecognized OS segment, is an
// unsupported-platform failure.
//
// FromTargetTriple and FromHostOS must stay behaviorally consistent: the
// same logical OS resolves to the same tag through either entry point.
func FromTargetTriple(triple string) (Platform, error) {
	parts := strings.Split(triple, "-")
	if len(parts) < 3 {
		return "", zerr.With(ErrUnsupportedPlatform, "target", triple)
	}

	switch parts[2] {
	case "windows":
		return PlatformMinGW, nil
	case "darwin":
		return PlatformMacOSX, nil
	case "linux":
		return PlatformLinux, nil
	case "freebsd":
		return PlatformFreeBSD, nil
	case "dragonfly":
		return PlatformBSD, nil
	default:
		return "", zerr.With(ErrUnsupportedPlatform, "target", triple)
	}
}

// NeedsPIC reports whether static archives for this platform must be built
// with position-independent code. The archive is later linked into a
// dynamically loaded artifact on these platforms.
func (p Platform) NeedsPIC() bool {
	switch p {
	case PlatformLinux, PlatformFreeBSD, PlatformBSD:
		return true
	default:
		return false
	}
}

// String returns the make target name for the platform.
func (p Platform) String() string {
	return string(p)
}
