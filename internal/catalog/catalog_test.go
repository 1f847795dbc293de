package catalog

import "testing"

func TestFindCar(t *testing.T) {
	car, ok := FindCar("porsche_963")
	if !ok {
		t.Fatal("FindCar(porsche_963) not found")
	}
	if car.Category != "Hypercar" {
		t.Errorf("car.Category = %q, want Hypercar", car.Category)
	}

	if _, ok := FindCar("delorean"); ok {
		t.Error("FindCar(delorean) unexpectedly found")
	}
}

func TestFindTrack(t *testing.T) {
	track, ok := FindTrack("le_mans")
	if !ok {
		t.Fatal("FindTrack(le_mans) not found")
	}
	if track.Type != TrackTypeHighSpeed {
		t.Errorf("track.Type = %q, want %q", track.Type, TrackTypeHighSpeed)
	}
}

func TestTrackType(t *testing.T) {
	if got := TrackType("sebring"); got != TrackTypeBumpy {
		t.Errorf("TrackType(sebring) = %q, want %q", got, TrackTypeBumpy)
	}
	if got := TrackType("nordschleife"); got != "" {
		t.Errorf("TrackType(unknown) = %q, want empty", got)
	}
}

// Every car's category and every track's type must come from the closed
// sets the prompt layer understands.
func TestCatalogConsistency(t *testing.T) {
	categories := map[string]bool{"Hypercar": true, "LMP2": true, "GT3": true, "GTE": true}
	for _, car := range Cars() {
		if !categories[car.Category] {
			t.Errorf("car %s has unknown category %q", car.ID, car.Category)
		}
		if car.ID == "" || car.Name == "" {
			t.Errorf("car %+v has empty identifier or name", car)
		}
	}

	types := map[string]bool{TrackTypeHighSpeed: true, TrackTypeTechnical: true, TrackTypeBumpy: true}
	for _, track := range Tracks() {
		if !types[track.Type] {
			t.Errorf("track %s has unknown type %q", track.ID, track.Type)
		}
	}
}
