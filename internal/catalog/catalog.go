// Package catalog holds the static car and track listings the form is
// populated from. The lists are process-wide constants: loaded once,
// never mutated, safe for unsynchronized concurrent reads.
package catalog

// Car is a selectable vehicle entry.
type Car struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Track is a selectable circuit entry.
type Track struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Type is a coarse circuit classification used by the prompt
	// guidance rules (e.g. "high-speed", "technical", "street").
	Type string `json:"type"`
}

// FindCar looks up a car by its identifier.
func FindCar(id string) (Car, bool) {
	for _, c := range Cars() {
		if c.ID == id {
			return c, true
		}
	}
	return Car{}, false
}

// FindTrack looks up a track by its identifier.
func FindTrack(id string) (Track, bool) {
	for _, t := range Tracks() {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// TrackType returns the circuit classification for a track identifier,
// or an empty string when the track is unknown.
func TrackType(id string) string {
	if t, ok := FindTrack(id); ok {
		return t.Type
	}
	return ""
}
