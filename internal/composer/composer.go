// Package composer translates raw form selections into a valid setup
// request, or blocks submission with a user-visible message. It is the
// client-side half of the system; the in-browser form performs the same
// checks before posting, and this package is the canonical definition
// of them.
package composer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

// Selections is the raw UI state: every field a string, exactly as a
// form control would hold it.
type Selections struct {
	Car             string
	Track           string
	CarCategory     string
	CarDisplay      string
	TrackDisplay    string
	SetupGoal       string
	SessionGoal     string
	SessionDuration string
	Weather         string
	TrackTemp       string
	DriverFeedback  string
	SpecificRequest string
}

// Validate checks the selections and builds the request payload.
// Required fields: car, track, setup style, session style, track
// temperature and session duration. The session duration must satisfy
// the session-type grammar: a positive integer number of minutes for a
// race; for qualifying, either that or the literal "flying lap"
// (case-insensitive).
func Validate(sel Selections) (*setup.SetupRequest, error) {
	type required struct {
		label string
		value string
	}
	for _, f := range []required{
		{"car", sel.Car},
		{"track", sel.Track},
		{"setup style", sel.SetupGoal},
		{"session style", sel.SessionGoal},
		{"track temperature", sel.TrackTemp},
		{"session duration", sel.SessionDuration},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("please select a %s", f.label)
		}
	}

	if err := validateDuration(sel.SessionGoal, sel.SessionDuration); err != nil {
		return nil, err
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(sel.TrackTemp), 64)
	if err != nil {
		return nil, fmt.Errorf("track temperature must be a number")
	}

	return &setup.SetupRequest{
		Car:              sel.Car,
		Track:            sel.Track,
		CarCategory:      sel.CarCategory,
		CarDisplayName:   sel.CarDisplay,
		TrackDisplayName: sel.TrackDisplay,
		SetupGoal:        sel.SetupGoal,
		SessionGoal:      sel.SessionGoal,
		SessionDuration:  strings.TrimSpace(sel.SessionDuration),
		Weather:          sel.Weather,
		TrackTemp:        temp,
		DriverFeedback:   sel.DriverFeedback,
		SpecificRequest:  sel.SpecificRequest,
	}, nil
}

func validateDuration(sessionGoal, duration string) error {
	trimmed := strings.TrimSpace(duration)

	if sessionGoal == setup.SessionGoalQualifying &&
		strings.EqualFold(trimmed, setup.FlyingLap) {
		return nil
	}

	minutes, err := strconv.Atoi(trimmed)
	switch {
	case sessionGoal == setup.SessionGoalRace && (err != nil || minutes <= 0):
		return fmt.Errorf("race duration must be a positive number of minutes")
	case sessionGoal == setup.SessionGoalQualifying && (err != nil || minutes <= 0):
		return fmt.Errorf("qualifying duration must be a positive number of minutes or %q", setup.FlyingLap)
	}
	return nil
}
