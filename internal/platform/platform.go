// Package platform provides host OS and architecture detection.
package platform

import "runtime"

// Type represents the detected host OS family.
type Type string

const (
	MacOS   Type = "macos"
	Linux   Type = "linux"
	Windows Type = "windows"
	Android Type = "android"
	Unknown Type = "unknown"
)

// Detect returns the current host OS family.
func Detect() Type {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) Type {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	case "android":
		return Android
	default:
		return Unknown
	}
}

// Recognized reports whether t is an OS family the classifier knows how
// to treat as a local machine.
func (t Type) Recognized() bool {
	return t != Unknown && t != ""
}

// System returns the conventional display name of the OS, the same
// spelling uname(1) reports. Unknown families fall back to runtime.GOOS.
func (t Type) System() string {
	switch t {
	case MacOS:
		return "Darwin"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	case Android:
		return "Android"
	default:
		return runtime.GOOS
	}
}

// Machine returns the host architecture in uname(1) spelling.
func Machine() string {
	return machineName(runtime.GOARCH)
}

func machineName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "i686"
	default:
		return goarch
	}
}
