// Package persona defines the named style bundles applied to
// content-generation calls.
package persona

// Tone is the voice a persona writes in.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneTechnical    Tone = "technical"
	ToneCreative     Tone = "creative"
	ToneAcademic     Tone = "academic"
)

// Length is the preferred output length.
type Length string

const (
	LengthConcise  Length = "concise"
	LengthBalanced Length = "balanced"
	LengthDetailed Length = "detailed"
)

// Format is the preferred output structure.
type Format string

const (
	FormatStructured   Format = "structured"
	FormatFlowing      Format = "flowing"
	FormatBulletPoints Format = "bullet-points"
)

// OutputPreferences are the three directives embedded in every
// content-generation prompt.
type OutputPreferences struct {
	Length Length `json:"length"`
	Format Format `json:"format"`
	Style  string `json:"style"`
}

// Persona is a named bundle of tone, expertise and instruction settings.
// The store owns the persisted collection; callers hold personas by id and
// must revalidate after mutations.
type Persona struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Tone              Tone              `json:"tone"`
	ExpertiseAreas    []string          `json:"expertiseAreas"`
	OutputPreferences OutputPreferences `json:"outputPreferences"`
	SystemPrompt      string            `json:"systemPrompt"`
	IsDefault         bool              `json:"isDefault"`
}

// ValidTone reports whether t is one of the declared tones.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneTechnical, ToneCreative, ToneAcademic:
		return true
	}
	return false
}

// ValidLength reports whether l is one of the declared lengths.
func ValidLength(l Length) bool {
	switch l {
	case LengthConcise, LengthBalanced, LengthDetailed:
		return true
	}
	return false
}

// ValidFormat reports whether f is one of the declared formats.
func ValidFormat(f Format) bool {
	switch f {
	case FormatStructured, FormatFlowing, FormatBulletPoints:
		return true
	}
	return false
}
