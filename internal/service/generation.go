package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rmartin/promptsynth/internal/domain"
	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/llm"
	"github.com/rmartin/promptsynth/internal/prompts"
)

// Generator runs the interaction loop: build the instruction, call the model,
// classify the outcome, and optionally persist. One synchronous model call
// per user action; no retries and no cancellation beyond ctx.
type Generator struct {
	client llm.Client
	store  *history.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewGenerator(client llm.Client, store *history.Store, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Generate validates the request, builds the prompt and calls the model.
// Failure modes, in order: ErrEmptyGoal (before any prompt is built), a
// wrapped ErrModel on transport failure, ErrEmptyResponse when the model
// produced only whitespace.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	if strings.TrimSpace(req.Goal) == "" {
		return domain.GenerationResult{}, domain.ErrEmptyGoal
	}

	instruction := prompts.Build(req.Goal, req.Tone, req.OutputType, req.Audience, req.Depth, req.GodMode)

	text, err := g.client.GenerateText(ctx, instruction)
	if err != nil {
		g.logger.Warn("model call failed", zap.Error(err))
		return domain.GenerationResult{}, fmt.Errorf("%w: %v", domain.ErrModel, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.GenerationResult{}, domain.ErrEmptyResponse
	}

	return domain.NewResult(text, g.now()), nil
}

// Save appends a request/result pair to the identity's history. A failure
// here is a persistence warning, reported separately from generation: the
// already-displayed result stays valid.
func (g *Generator) Save(identity string, req domain.GenerationRequest, res domain.GenerationResult) error {
	if err := g.store.Append(identity, domain.RecordOf(req, res)); err != nil {
		g.logger.Warn("history append failed", zap.String("identity", identity), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// History loads the identity's saved prompts. Read failures collapse to an
// empty table at this boundary; they are logged, not surfaced.
func (g *Generator) History(identity string) []domain.HistoryRecord {
	records, err := g.store.Load(identity)
	if err != nil {
		g.logger.Warn("history load failed", zap.String("identity", identity), zap.Error(err))
	}
	return records
}

// ExportHistory serializes the identity's table for download.
func (g *Generator) ExportHistory(identity string) ([]byte, error) {
	return g.store.Export(identity)
}

// Remix re-rolls tone and format: each is drawn uniformly from the enumerated
// values excluding the previous one, everything else kept, then Generate runs
// again. An enumeration smaller than two values cannot produce a different
// pick and fails with ErrInsufficientVariants.
func (g *Generator) Remix(ctx context.Context, prev domain.GenerationRequest) (domain.GenerationRequest, domain.GenerationResult, error) {
	tone, err := remixTone(prev.Tone)
	if err != nil {
		return domain.GenerationRequest{}, domain.GenerationResult{}, err
	}
	outputType, err := remixOutputType(prev.OutputType)
	if err != nil {
		return domain.GenerationRequest{}, domain.GenerationResult{}, err
	}

	next := prev
	next.Tone = tone
	next.OutputType = outputType

	res, err := g.Generate(ctx, next)
	if err != nil {
		return domain.GenerationRequest{}, domain.GenerationResult{}, err
	}
	return next, res, nil
}

// Transcribe sends raw audio with the fixed transcription instruction and
// returns the text as a candidate goal. A failure is reported to the caller
// but never blocks manual goal entry.
func (g *Generator) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	text, err := g.client.GenerateFromAudio(ctx, prompts.TranscriptionInstruction(), audio, mimeType)
	if err != nil {
		g.logger.Warn("transcription failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrModel, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

func remixTone(prev domain.Tone) (domain.Tone, error) {
	if len(domain.ValidTones) < 2 {
		return "", domain.ErrInsufficientVariants
	}
	variants := make([]domain.Tone, 0, len(domain.ValidTones)-1)
	for _, t := range domain.ValidTones {
		if t != prev {
			variants = append(variants, t)
		}
	}
	return variants[rand.Intn(len(variants))], nil
}

func remixOutputType(prev domain.OutputType) (domain.OutputType, error) {
	if len(domain.OutputTypes) < 2 {
		return "", domain.ErrInsufficientVariants
	}
	variants := make([]domain.OutputType, 0, len(domain.OutputTypes)-1)
	for _, o := range domain.OutputTypes {
		if o != prev {
			variants = append(variants, o)
		}
	}
	return variants[rand.Intn(len(variants))], nil
}
