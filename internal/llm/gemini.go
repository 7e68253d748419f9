package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-flash"

// Gemini calls the hosted Gemini Developer API. No retries, no backoff: a
// transport failure surfaces immediately as a terminal error for that
// request.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a client against the Gemini Developer API backend.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini requires an API key")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) GenerateText(ctx context.Context, instruction string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(instruction), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	// Empty text is not an error at this layer; the orchestrator decides.
	return res.Text(), nil
}

func (g *Gemini) GenerateFromAudio(ctx context.Context, instruction string, audio []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(instruction),
		genai.NewPartFromBytes(audio, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return res.Text(), nil
}
