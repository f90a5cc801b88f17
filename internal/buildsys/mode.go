package buildsys

// Mode selects the build configuration.
type Mode int

const (
	// Debug is the default mode.
	Debug Mode = iota
	// Release builds with optimizations.
	Release
)

// ModeFor maps the --release flag to a Mode.
func ModeFor(release bool) Mode {
	if release {
		return Release
	}
	return Debug
}

// String returns the configuration name passed to the toolchain
// ("Debug" or "Release").
func (m Mode) String() string {
	if m == Release {
		return "Release"
	}
	return "Debug"
}

// Subdir returns the per-mode directory name under target/
// ("debug" or "release").
func (m Mode) Subdir() string {
	if m == Release {
		return "release"
	}
	return "debug"
}
