package setup

import (
	"errors"
	"testing"
)

func TestValidateAllFieldsPresent(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Errorf("Validate() on complete request returned error: %v", err)
	}
}

func TestValidateListsEveryMissingField(t *testing.T) {
	req := &SetupRequest{}
	err := req.Validate()

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if len(validationErr.Missing) != 4 {
		t.Errorf("ValidationError.Missing = %v, want 4 entries", validationErr.Missing)
	}
}

func TestRaceMinutes(t *testing.T) {
	tests := []struct {
		name        string
		sessionGoal string
		duration    string
		wantMinutes int
		wantOK      bool
	}{
		{"race sixty", SessionGoalRace, "60", 60, true},
		{"race padded", SessionGoalRace, "  45 ", 45, true},
		{"race words", SessionGoalRace, "one hour", 0, false},
		{"race negative", SessionGoalRace, "-30", 0, false},
		{"qualifying minutes", SessionGoalQualifying, "15", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SetupRequest{SessionGoal: tt.sessionGoal, SessionDuration: tt.duration}
			minutes, ok := req.RaceMinutes()
			if minutes != tt.wantMinutes || ok != tt.wantOK {
				t.Errorf("RaceMinutes() = (%d, %v), want (%d, %v)", minutes, ok, tt.wantMinutes, tt.wantOK)
			}
		})
	}
}

func TestIsFlyingLap(t *testing.T) {
	for input, want := range map[string]bool{
		"flying lap":  true,
		"Flying Lap":  true,
		" FLYING LAP": true,
		"10":          false,
		"":            false,
	} {
		req := &SetupRequest{SessionDuration: input}
		if got := req.IsFlyingLap(); got != want {
			t.Errorf("IsFlyingLap(%q) = %v, want %v", input, got, want)
		}
	}
}
