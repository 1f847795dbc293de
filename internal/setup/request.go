package setup

import (
	"strconv"
	"strings"
)

// Session and setup style enumerations as sent by the form.
const (
	SessionGoalRace       = "race"
	SessionGoalQualifying = "qualifying"

	SetupGoalSafe       = "safe"
	SetupGoalBalanced   = "balanced"
	SetupGoalAggressive = "aggressive"

	// FlyingLap is the literal qualifying duration phrase, matched
	// case-insensitively.
	FlyingLap = "flying lap"
)

// SetupRequest is one setup-generation request as posted by the form.
// It is constructed fresh per submission and discarded after the
// response; nothing here is retained between requests.
type SetupRequest struct {
	Car              string  `json:"car"`
	Track            string  `json:"track"`
	CarCategory      string  `json:"selectedCarCategory"`
	CarDisplayName   string  `json:"selectedCarDisplay"`
	TrackDisplayName string  `json:"selectedTrackDisplay"`
	SetupGoal        string  `json:"setupGoal"`
	SessionGoal      string  `json:"sessionGoal"`
	SessionDuration  string  `json:"sessionDuration"`
	Weather          string  `json:"selectedWeather"`
	TrackTemp        float64 `json:"trackTemp"`
	DriverFeedback   string  `json:"driverFeedback"`
	SpecificRequest  string  `json:"specificRequest"`
}

// Validate checks the fields the assembler cannot proceed without.
// It is local and synchronous; no external call happens on failure.
func (r *SetupRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Car) == "" {
		missing = append(missing, "car")
	}
	if strings.TrimSpace(r.Track) == "" {
		missing = append(missing, "track")
	}
	if strings.TrimSpace(r.SetupGoal) == "" {
		missing = append(missing, "setupGoal")
	}
	if strings.TrimSpace(r.CarCategory) == "" {
		missing = append(missing, "selectedCarCategory")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// RaceMinutes returns the race length in minutes when the request is a
// race session with a parseable positive duration. The boolean is false
// otherwise; the fuel directive is omitted from the prompt in that case.
func (r *SetupRequest) RaceMinutes() (int, bool) {
	if r.SessionGoal != SessionGoalRace {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(r.SessionDuration))
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

// IsFlyingLap reports whether the qualifying duration is the literal
// "flying lap" phrase.
func (r *SetupRequest) IsFlyingLap() bool {
	return strings.EqualFold(strings.TrimSpace(r.SessionDuration), FlyingLap)
}
