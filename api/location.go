package api

import "fmt"

// Location selects the storage target a mount prefix points at.
type Location uint8

const (
	LocationLocal Location = iota
	LocationRemote
)

// Locations lists every supported location.
func Locations() []Location { return []Location{LocationLocal, LocationRemote} }

func (l Location) String() string {
	switch l {
	case LocationLocal:
		return "local"
	case LocationRemote:
		return "remote"
	}
	return fmt.Sprintf("Location(%d)", uint8(l))
}

// ParseLocation maps the document spellings "local" and "remote".
func ParseLocation(s string) (Location, error) {
	switch s {
	case "local":
		return LocationLocal, nil
	case "remote":
		return LocationRemote, nil
	}
	return 0, fmt.Errorf("unknown location %q (want local or remote)", s)
}

// Platform selects the path convention a mount prefix is written for.
type Platform uint8

const (
	PlatformLinux Platform = iota
	PlatformWindows
)

// Platforms lists every supported platform.
func Platforms() []Platform { return []Platform{PlatformLinux, PlatformWindows} }

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

// ParsePlatform maps the document spellings "linux" and "windows".
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "linux":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	}
	return 0, fmt.Errorf("unknown platform %q (want linux or windows)", s)
}

// Separator returns the platform's path separator convention.
func (p Platform) Separator() string {
	if p == PlatformWindows {
		return `\`
	}
	return "/"
}
