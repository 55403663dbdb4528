// Package platform identifies the operating system once per run so the
// rest of the program can pick the matching script template and launch
// strategy.
package platform

import "runtime"

// Platform is the operating-system family dnshell knows how to configure.
type Platform int

const (
	Unsupported Platform = iota
	Windows
	Linux
)

// Current returns the platform of the running process.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a Platform. Split out from Current so the
// mapping can be tested on any host.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Unsupported
	}
}

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unsupported"
	}
}
