package setup

import (
	"fmt"
	"strings"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/catalog"
	"github.com/AMGSoya/lmu-setup-generator-sub000/pkg/embedded"
)

// fuelDirectiveFormat is the race-only directive asking the model to
// size the fuel load; present only when the race length is a positive
// integer number of minutes.
const fuelDirectiveFormat = "Estimate the fuel load for a %d-minute race, including one formation lap of margin, and set FuelSetting accordingly."

// PromptRenderer turns a validated request plus a resolved category
// template into the system and user prompts sent upstream. The
// instructional documents are versioned static content (pkg/embedded);
// only the parameter block varies per request.
type PromptRenderer struct {
	preamble string
	guidance string
}

// NewPromptRenderer loads the embedded instructional documents.
func NewPromptRenderer() *PromptRenderer {
	return &PromptRenderer{
		preamble: strings.TrimSpace(string(embedded.SystemPreambleTxt)),
		guidance: strings.TrimSpace(string(embedded.GuidanceRulesTxt)),
	}
}

// SystemPrompt returns the fixed instructional preamble and guidance
// rules. Identical for every request.
func (p *PromptRenderer) SystemPrompt() string {
	return p.preamble + "\n\n" + p.guidance
}

// UserPrompt renders the per-request block: the literal request
// parameters, the conditional fuel directive, and the full example
// template for the resolved category.
func (p *PromptRenderer) UserPrompt(req *SetupRequest, template string) string {
	var b strings.Builder

	b.WriteString("SETUP REQUEST\n")
	writeParam(&b, "Car", displayOr(req.CarDisplayName, req.Car))
	writeParam(&b, "Car category", req.CarCategory)
	writeParam(&b, "Track", displayOr(req.TrackDisplayName, req.Track))
	if trackType := catalog.TrackType(req.Track); trackType != "" {
		writeParam(&b, "Track character", trackType)
	}
	writeParam(&b, "Setup style", req.SetupGoal)
	writeParam(&b, "Session", req.SessionGoal)
	writeParam(&b, "Session length", req.SessionDuration)
	writeParam(&b, "Weather", req.Weather)
	writeParam(&b, "Track temperature", fmt.Sprintf("%.0fC", req.TrackTemp))
	writeParam(&b, "Driver feedback", req.DriverFeedback)
	writeParam(&b, "Specific request", req.SpecificRequest)

	if minutes, ok := req.RaceMinutes(); ok {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(fuelDirectiveFormat, minutes))
		b.WriteString("\n")
	}

	b.WriteString("\nEXAMPLE SETUP FILE FOR THIS CAR CATEGORY — follow its structure exactly:\n\n")
	b.WriteString(template)
	b.WriteString("\n")

	return b.String()
}

func writeParam(b *strings.Builder, name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString("- ")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func displayOr(display, id string) string {
	if strings.TrimSpace(display) != "" {
		return display
	}
	return id
}
