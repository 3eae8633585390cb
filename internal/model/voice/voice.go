package voice

// Config maps a personality preset to the ElevenLabs voice that speaks it.
type Config struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VoiceID     string `json:"voiceId"`
	Description string `json:"description"`
}

// Seed returns the built-in voice catalog, keyed by preset id.
func Seed() []Config {
	return []Config{
		{
			ID:          "soothing",
			Name:        "Lily",
			VoiceID:     "pFZP5JQG7iQjIQuC4Bku",
			Description: "Warm, gentle voice for calming conversations",
		},
		{
			ID:          "Rational",
			Name:        "Charlie",
			VoiceID:     "IKne3meq5aSn9XLyUdCD",
			Description: "Clear, professional voice for logical discussions",
		},
		{
			ID:          "Bubbly",
			Name:        "Gigi",
			VoiceID:     "jBpfuIE2acCO8z3wKNLl",
			Description: "Energetic, upbeat voice for motivational chats",
		},
		{
			ID:          "Ragebait",
			Name:        "Callum",
			VoiceID:     "N2lVS1w4EtoT3dr4eOWO",
			Description: "Dramatic, intense voice for provocative exchanges",
		},
	}
}

// Registry resolves voices by preset id with a fixed default.
type Registry struct {
	items []Config
}

// NewRegistry returns a Registry preloaded with the supplied voices. The
// first entry is the fallback for unknown preset ids.
func NewRegistry(items []Config) *Registry {
	return &Registry{items: append([]Config(nil), items...)}
}

// List returns the catalog in declaration order.
func (r *Registry) List() []Config {
	return append([]Config(nil), r.items...)
}

// Resolve returns the voice paired with presetID, falling back to the
// default entry when the id is empty or unknown.
func (r *Registry) Resolve(presetID string) Config {
	if presetID != "" {
		for _, item := range r.items {
			if item.ID == presetID {
				return item
			}
		}
	}
	return r.items[0]
}

// ResolveID is a shorthand for Resolve(presetID).VoiceID.
func (r *Registry) ResolveID(presetID string) string {
	return r.Resolve(presetID).VoiceID
}
