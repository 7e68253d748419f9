package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmartin/promptsynth/internal/domain"
	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/llm"
)

func newGenerator(t *testing.T, mock *llm.Mock) *Generator {
	t.Helper()
	return NewGenerator(mock, history.NewStore(t.TempDir()), zap.NewNop())
}

func validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Goal:       "Summarize my meeting notes",
		Tone:       "Professional",
		OutputType: "Bullet List",
		Audience:   "Team members",
		Depth:      1,
	}
}

func TestGenerateSuccess(t *testing.T) {
	mock := &llm.Mock{Text: "Here is your polished prompt."}
	g := newGenerator(t, mock)

	res, err := g.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Here is your polished prompt.", res.Prompt)
	assert.NotEmpty(t, res.Timestamp)

	// The instruction sent to the model interpolates the form values.
	assert.Contains(t, mock.LastInstruction, "Goal: Summarize my meeting notes")
	assert.Contains(t, mock.LastInstruction, "Tone: Professional")
	assert.Contains(t, mock.LastInstruction, "Format: Bullet List")
	assert.Contains(t, mock.LastInstruction, "Audience: Team members")
	assert.NotContains(t, mock.LastInstruction, "God Mode")
}

func TestGenerateEmptyGoal(t *testing.T) {
	mock := &llm.Mock{Text: "unused"}
	g := newGenerator(t, mock)

	for _, goal := range []string{"", "   ", "\n\t"} {
		req := validRequest()
		req.Goal = goal
		_, err := g.Generate(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrEmptyGoal)
	}
	// Validation happens before any prompt is built or sent.
	assert.Empty(t, mock.LastInstruction)
}

func TestGenerateModelFailure(t *testing.T) {
	mock := &llm.Mock{Err: errors.New("connection refused")}
	g := newGenerator(t, mock)

	_, err := g.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrModel)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateEmptyResponse(t *testing.T) {
	mock := &llm.Mock{Text: "  \n\t "}
	g := newGenerator(t, mock)

	_, err := g.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGenerateMetaPrompt(t *testing.T) {
	mock := &llm.Mock{Text: "meta guide"}
	g := newGenerator(t, mock)

	req := validRequest()
	req.Goal = "prompt prompt prompt generator"
	req.Depth = 3
	req.GodMode = true

	_, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, mock.LastInstruction, "Recursion depth: 3")
	assert.Contains(t, mock.LastInstruction, "God Mode: ON")
}

func TestSaveThenHistory(t *testing.T) {
	mock := &llm.Mock{Text: "result text"}
	g := newGenerator(t, mock)

	req := validRequest()
	res, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, g.Save("demo", req, res))

	records := g.History("demo")
	require.Len(t, records, 1)
	assert.Equal(t, domain.RecordOf(req, res), records[0])
}

func TestHistoryUnknownIdentityIsEmpty(t *testing.T) {
	g := newGenerator(t, &llm.Mock{})
	assert.Empty(t, g.History("nobody"))
}

func TestRemixNeverRepeatsToneOrFormat(t *testing.T) {
	mock := &llm.Mock{Text: "remixed"}
	g := newGenerator(t, mock)

	prev := validRequest()
	for i := 0; i < 100; i++ {
		next, res, err := g.Remix(context.Background(), prev)
		require.NoError(t, err)
		assert.NotEqual(t, prev.Tone, next.Tone, "remix repeated the previous tone")
		assert.NotEqual(t, prev.OutputType, next.OutputType, "remix repeated the previous format")
		assert.Equal(t, prev.Goal, next.Goal)
		assert.Equal(t, prev.Audience, next.Audience)
		assert.Equal(t, prev.Depth, next.Depth)
		assert.Equal(t, prev.GodMode, next.GodMode)
		assert.Equal(t, "remixed", res.Prompt)
	}
}

func TestRemixPicksEnumeratedValues(t *testing.T) {
	g := newGenerator(t, &llm.Mock{Text: "x"})

	next, _, err := g.Remix(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, next.Tone, domain.NormalizeTone(next.Tone))
	assert.Equal(t, next.OutputType, domain.NormalizeOutputType(next.OutputType))
}

func TestTranscribe(t *testing.T) {
	mock := &llm.Mock{Text: "Summarize my meeting notes"}
	g := newGenerator(t, mock)

	audio := []byte{0x52, 0x49, 0x46, 0x46}
	text, err := g.Transcribe(context.Background(), audio, "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "Summarize my meeting notes", text)
	assert.Equal(t, audio, mock.LastAudio)
	assert.Contains(t, mock.LastInstruction, "Transcribe")
}

func TestTranscribeFailureIsReported(t *testing.T) {
	g := newGenerator(t, &llm.Mock{Err: errors.New("boom")})

	_, err := g.Transcribe(context.Background(), []byte{1}, "audio/wav")
	assert.ErrorIs(t, err, domain.ErrModel)

	g = newGenerator(t, &llm.Mock{Text: "   "})
	_, err = g.Transcribe(context.Background(), []byte{1}, "audio/wav")
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}
