package port

// ColorSchemePreference is the desktop's light or dark preference.
type ColorSchemePreference struct {
	PrefersDark bool
	// Source names the detector that answered, or "config" / "fallback".
	Source string
}

// ColorSchemeDetector reads the desktop color scheme from one source.
type ColorSchemeDetector interface {
	Name() string
	// Priority orders detectors; higher is asked first.
	Priority() int
	Available() bool
	Detect() (prefersDark bool, ok bool)
}
