package catalog

// Track type classifications consumed by the prompt guidance rules.
const (
	TrackTypeHighSpeed = "high-speed"
	TrackTypeTechnical = "technical"
	TrackTypeBumpy     = "bumpy"
)

// Tracks returns all configured circuits.
func Tracks() []Track {
	return []Track{
		{"le_mans", "Circuit de la Sarthe (Le Mans)", TrackTypeHighSpeed},
		{"monza", "Autodromo Nazionale Monza", TrackTypeHighSpeed},
		{"spa", "Circuit de Spa-Francorchamps", TrackTypeHighSpeed},
		{"fuji", "Fuji Speedway", TrackTypeHighSpeed},
		{"bahrain", "Bahrain International Circuit", TrackTypeTechnical},
		{"imola", "Autodromo Enzo e Dino Ferrari (Imola)", TrackTypeTechnical},
		{"portimao", "Algarve International Circuit (Portimao)", TrackTypeTechnical},
		{"cota", "Circuit of the Americas", TrackTypeBumpy},
		{"sebring", "Sebring International Raceway", TrackTypeBumpy},
		{"interlagos", "Autodromo Jose Carlos Pace (Interlagos)", TrackTypeBumpy},
	}
}
