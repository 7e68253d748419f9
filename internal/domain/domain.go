package domain

import "time"

// Tone is one of the closed set of voices a generated prompt can ask for.
type Tone string

// OutputType is one of the closed set of formats a generated prompt can target.
type OutputType string

// ValidTones is the full tone enumeration, in presentation order.
// The first entry is the default for anything outside the set.
var ValidTones = []Tone{
	"Clear and helpful", "Professional", "Casual", "Funny", "Creative",
	"Motivational", "Witty", "Analytical", "Cynical but comforting", "Roasty",
	"Passive aggressive", "Aggressively encouraging", "Satirical", "Irritated",
	"Snarky", "Reflective",
}

// OutputTypes is the full output format enumeration, in presentation order.
var OutputTypes = []OutputType{
	"Text", "Conversation", "Image Prompt", "Markdown", "Bullet List", "JSON",
}

// NormalizeTone maps any value outside the enumeration to the first entry.
func NormalizeTone(t Tone) Tone {
	for _, v := range ValidTones {
		if t == v {
			return t
		}
	}
	return ValidTones[0]
}

// NormalizeOutputType maps any value outside the enumeration to the first entry.
func NormalizeOutputType(o OutputType) OutputType {
	for _, v := range OutputTypes {
		if o == v {
			return o
		}
	}
	return OutputTypes[0]
}

// Template is a prefilled form preset. Loaded once at startup, never mutated.
type Template struct {
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Goal       string     `json:"goal"`
	Tone       Tone       `json:"tone"`
	OutputType OutputType `json:"output_type"`
	Audience   string     `json:"audience"`
}

// GenerationRequest carries one form submission. Not persisted.
type GenerationRequest struct {
	Goal       string     `json:"goal"`
	Tone       Tone       `json:"tone"`
	OutputType OutputType `json:"output_type"`
	Audience   string     `json:"audience"`
	Depth      int        `json:"depth"`
	GodMode    bool       `json:"god_mode"`
}

// TimestampLayout is the local datetime rendering used in results and history rows.
const TimestampLayout = "2006-01-02 15:04:05"

// GenerationResult is the model output for one request. Transient unless the
// user opts to save it, at which point it becomes a HistoryRecord.
type GenerationResult struct {
	Prompt    string `json:"prompt"`
	Timestamp string `json:"timestamp"`
}

// NewResult stamps a model response with the local time.
func NewResult(prompt string, now time.Time) GenerationResult {
	return GenerationResult{
		Prompt:    prompt,
		Timestamp: now.Format(TimestampLayout),
	}
}

// HistoryRecord is one saved row in a user's prompt history. Created on
// explicit user action, never updated or deleted.
type HistoryRecord struct {
	Timestamp  string     `json:"timestamp"`
	Goal       string     `json:"goal"`
	Tone       Tone       `json:"tone"`
	OutputType OutputType `json:"output_type"`
	Audience   string     `json:"audience"`
	Prompt     string     `json:"prompt"`
}

// RecordOf builds the history row for a request/result pair.
func RecordOf(req GenerationRequest, res GenerationResult) HistoryRecord {
	return HistoryRecord{
		Timestamp:  res.Timestamp,
		Goal:       req.Goal,
		Tone:       req.Tone,
		OutputType: req.OutputType,
		Audience:   req.Audience,
		Prompt:     res.Prompt,
	}
}
