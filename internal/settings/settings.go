package settings

// Duration bounds match the settings form's spinner range.
const (
	MinDurationSeconds = 1
	MaxDurationSeconds = 3600

	DefaultDurationSeconds = 60
)

// Settings is the persisted quiz configuration. The JSON key "timer" is kept
// for compatibility with settings files written by earlier releases.
type Settings struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Duration int    `json:"timer"`
}

// Default returns the settings used when nothing has been persisted yet.
// Question and answer are legitimately empty.
func Default() Settings {
	return Settings{
		Question: "",
		Answer:   "",
		Duration: DefaultDurationSeconds,
	}
}

// Normalize clamps Duration into the allowed range and returns the result.
func (s Settings) Normalize() Settings {
	if s.Duration < MinDurationSeconds {
		s.Duration = MinDurationSeconds
	}
	if s.Duration > MaxDurationSeconds {
		s.Duration = MaxDurationSeconds
	}
	return s
}
