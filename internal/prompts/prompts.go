package prompts

import (
	"fmt"
	"strings"

	"github.com/rmartin/promptsynth/internal/domain"
)

// metaTemplate is emitted when the goal is itself about writing prompts.
// Tone, format and audience are ignored in this branch.
const metaTemplate = `You are an AI that creates prompts for creating prompts.
- Recursion depth: %d
- God Mode: %s

Write a meta-level prompt that guides another AI to help someone write better prompts.
Include formatting suggestions and a tip at the end.`

// standardTemplate rewrites a rough user idea into a structured prompt.
const standardTemplate = `You are an AI prompt engineer. Your task is to rewrite a rough user idea into a well-structured AI prompt.

Details:
- Goal: %s
- Tone: %s
- Format: %s
- Audience: %s

Structure the prompt clearly, include instructions for tone and format, and add a customization tip at the end.`

// transcriptionInstruction accompanies raw audio sent to the model in the
// voice-enabled flow.
const transcriptionInstruction = `Transcribe the spoken audio to plain text. Return only the transcription, with no commentary.`

// Build assembles the instruction string sent to the model. Pure: identical
// inputs always yield the identical string. The goal is lowercased for
// inspection only; the emitted text embeds it verbatim. Callers validate
// non-blank goals before calling.
func Build(goal string, tone domain.Tone, outputType domain.OutputType, audience string, depth int, godMode bool) string {
	if strings.Count(strings.ToLower(goal), "prompt") >= 3 {
		mode := "OFF"
		if godMode {
			mode = "ON"
		}
		return fmt.Sprintf(metaTemplate, depth, mode)
	}
	return fmt.Sprintf(standardTemplate, goal, tone, outputType, audience)
}

// TranscriptionInstruction returns the fixed instruction paired with audio
// bytes when asking the model for a transcription.
func TranscriptionInstruction() string {
	return transcriptionInstruction
}
