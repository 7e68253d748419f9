package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmartin/promptsynth/internal/domain"
)

// header is the exact column layout of a history file.
var header = []string{"timestamp", "goal", "tone", "output_type", "audience", "prompt"}

// Store keeps one append-only CSV table per user identity under dir.
// Append is read-modify-write of the whole file, so concurrent writers
// against the same identity are last-writer-wins. Concurrent writers to one
// identity are not a supported scenario; no locking is done.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// first append.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the history file location for an identity.
func (s *Store) Path(identity string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_prompt_history.csv", identity))
}

// Load reads all records for an identity in stored order. A missing file is
// not an error: it returns an empty slice and nil. A malformed or unreadable
// file returns an empty slice and the read error, so callers can distinguish
// "no data" from "failed to read" even when they collapse both to empty.
func (s *Store) Load(identity string) ([]domain.HistoryRecord, error) {
	f, err := os.Open(s.Path(identity))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryRecord{}, nil
		}
		return []domain.HistoryRecord{}, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return []domain.HistoryRecord{}, fmt.Errorf("read history: %w", err)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < len(header) {
			continue // header, or a short row from a truncated write
		}
		records = append(records, domain.HistoryRecord{
			Timestamp:  row[0],
			Goal:       row[1],
			Tone:       domain.Tone(row[2]),
			OutputType: domain.OutputType(row[3]),
			Audience:   row[4],
			Prompt:     row[5],
		})
	}
	return records, nil
}

// Append adds one record to an identity's table, preserving order, and
// rewrites the full file. Read failures on the existing file are swallowed:
// the append proceeds against whatever could be read.
func (s *Store) Append(identity string, record domain.HistoryRecord) error {
	records, _ := s.Load(identity)
	records = append(records, record)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := marshal(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(identity), data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Export serializes an identity's full table as CSV bytes, for download.
func (s *Store) Export(identity string) ([]byte, error) {
	records, err := s.Load(identity)
	if err != nil {
		return nil, err
	}
	return marshal(records)
}

func marshal(records []domain.HistoryRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write history header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Timestamp, r.Goal, string(r.Tone), string(r.OutputType), r.Audience, r.Prompt}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write history row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush history: %w", err)
	}
	return buf.Bytes(), nil
}
