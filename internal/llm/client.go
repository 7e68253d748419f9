package llm

import "context"

// Client is the model boundary. The hosted API is called synchronously; a
// request either produces text or fails, and an empty string is a valid
// (unusable) outcome the caller classifies, not an error here.
type Client interface {
	// GenerateText sends a single instruction string.
	GenerateText(ctx context.Context, instruction string) (string, error)

	// GenerateFromAudio sends an instruction paired with raw audio bytes,
	// for the voice-enabled transcription flow.
	GenerateFromAudio(ctx context.Context, instruction string, audio []byte, mimeType string) (string, error)
}
