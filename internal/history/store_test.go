package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmartin/promptsynth/internal/domain"
)

func record(goal, prompt string) domain.HistoryRecord {
	return domain.HistoryRecord{
		Timestamp:  "2025-07-01 10:30:00",
		Goal:       goal,
		Tone:       "Professional",
		OutputType: "Text",
		Audience:   "Team members",
		Prompt:     prompt,
	}
}

func TestLoadMissingIdentity(t *testing.T) {
	s := NewStore(t.TempDir())

	records, err := s.Load("nobody")
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(records))
	}
}

func TestAppendThenLoad(t *testing.T) {
	s := NewStore(t.TempDir())

	first := record("first goal", "first prompt")
	second := record("second goal", "second prompt")

	if err := s.Append("demo", first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append("demo", second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := s.Load("demo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0] != first {
		t.Errorf("first record = %+v, want %+v", records[0], first)
	}
	if records[len(records)-1] != second {
		t.Errorf("last record = %+v, want appended %+v", records[len(records)-1], second)
	}
}

func TestRoundTripPreservesOrderAndEscaping(t *testing.T) {
	s := NewStore(t.TempDir())

	awkward := []domain.HistoryRecord{
		record("goal, with, commas", "prompt with \"quotes\""),
		record("goal\nwith newline", "multi\nline\nprompt"),
		record("plain", "plain"),
	}
	for _, r := range awkward {
		if err := s.Append("demo", r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := s.Load("demo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != len(awkward) {
		t.Fatalf("expected %d records, got %d", len(awkward), len(records))
	}
	for i := range awkward {
		if records[i] != awkward[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], awkward[i])
		}
	}
}

func TestLoadMalformedFileReportsError(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	// A bare quote mid-field is invalid CSV.
	bad := "timestamp,goal,tone,output_type,audience,prompt\na,b\"c,d,e,f,g\n"
	if err := os.WriteFile(filepath.Join(dir, "demo_prompt_history.csv"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := s.Load("demo")
	if err == nil {
		t.Error("expected a read error for malformed file")
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence on read failure, got %d records", len(records))
	}
}

func TestAppendSurvivesMalformedExisting(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	bad := "timestamp,goal,tone,output_type,audience,prompt\na,b\"c,d,e,f,g\n"
	if err := os.WriteFile(filepath.Join(dir, "demo_prompt_history.csv"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	// Read failures are swallowed: append proceeds against what could be read.
	if err := s.Append("demo", record("fresh", "fresh prompt")); err != nil {
		t.Fatalf("Append after corruption: %v", err)
	}

	records, err := s.Load("demo")
	if err != nil {
		t.Fatalf("Load after rewrite: %v", err)
	}
	if len(records) != 1 || records[0].Goal != "fresh" {
		t.Errorf("expected single fresh record, got %+v", records)
	}
}

func TestExportMatchesFile(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Append("demo", record("g", "p")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	exported, err := s.Export("demo")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	onDisk, err := os.ReadFile(s.Path("demo"))
	if err != nil {
		t.Fatal(err)
	}
	if string(exported) != string(onDisk) {
		t.Errorf("export differs from stored file:\n%s\nvs\n%s", exported, onDisk)
	}
}
