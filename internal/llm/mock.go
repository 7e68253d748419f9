package llm

import "context"

// Mock is a canned Client for tests and local runs without an API key.
type Mock struct {
	Text string
	Err  error

	// LastInstruction records the most recent instruction for assertions.
	LastInstruction string
	LastAudio       []byte
}

func (m *Mock) GenerateText(_ context.Context, instruction string) (string, error) {
	m.LastInstruction = instruction
	return m.Text, m.Err
}

func (m *Mock) GenerateFromAudio(_ context.Context, instruction string, audio []byte, _ string) (string, error) {
	m.LastInstruction = instruction
	m.LastAudio = audio
	return m.Text, m.Err
}
