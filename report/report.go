// Package report drives a block stream through a mine and summarises the
// outcome for people (text) and tools (JSON).
package report

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/jsonx"
	"github.com/mezonai/blockmine/mine"
	"github.com/mezonai/blockmine/monitoring"
)

// Failure is one rejected candidate.
type Failure struct {
	Index    int    `json:"index"`
	Position uint64 `json:"position"`
	Value    string `json:"value"`
}

// Summary is the result of one validation run.
type Summary struct {
	Engine     string    `json:"engine"`
	WindowSize int       `json:"window_size"`
	Candidates int       `json:"candidates"`
	Checked    int       `json:"checked"`
	Accepted   int       `json:"accepted"`
	Absorbed   uint64    `json:"absorbed"`
	Failures   []Failure `json:"failures"`
	Aborted    string    `json:"aborted,omitempty"`
	ElapsedMs  float64   `json:"elapsed_ms"`
}

// Valid reports whether every checked candidate was accepted.
func (s *Summary) Valid() bool {
	return len(s.Failures) == 0 && s.Aborted == ""
}

// Run feeds candidates to m in order. With stopOnFirst it stops at the first
// rejected candidate, otherwise it probes the whole stream. An arithmetic
// overflow always ends the run and is returned.
func Run(m *mine.Mine, candidates []block.Block, stopOnFirst bool) (*Summary, error) {
	kind := string(m.EngineKind())
	s := &Summary{
		Engine:     kind,
		WindowSize: m.Size(),
		Candidates: len(candidates),
		Failures:   []Failure{},
	}
	monitoring.SetWindowSize(m.Size())

	start := time.Now()
	last := start
	var runErr error
	for i, err := range m.Validate(slices.Values(candidates)) {
		now := time.Now()
		monitoring.RecordExtension(kind, now.Sub(last))
		last = now
		s.Checked++

		if err == nil {
			s.Accepted++
			monitoring.RecordBlock(kind, monitoring.BlockAccepted)
			continue
		}
		if ibe, ok := mine.IsInvalidBlock(err); ok {
			s.Failures = append(s.Failures, Failure{Index: i, Position: ibe.Position, Value: ibe.Value.Dec()})
			monitoring.RecordBlock(kind, monitoring.BlockInvalid)
			if stopOnFirst {
				break
			}
			continue
		}
		monitoring.RecordBlock(kind, monitoring.BlockOverflow)
		s.Aborted = err.Error()
		runErr = err
		break
	}

	s.Absorbed = m.Total()
	s.ElapsedMs = float64(time.Since(start).Microseconds()) / 1000
	monitoring.SetBlocksAbsorbed(s.Absorbed)
	return s, runErr
}

// WriteText renders a human readable report.
func (s *Summary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "engine=%s window=%d checked=%d/%d accepted=%d absorbed=%d elapsed=%.3fms\n",
		s.Engine, s.WindowSize, s.Checked, s.Candidates, s.Accepted, s.Absorbed, s.ElapsedMs); err != nil {
		return err
	}
	for _, f := range s.Failures {
		if _, err := fmt.Fprintf(w, "invalid block %s at position %d\n", f.Value, f.Position); err != nil {
			return err
		}
	}
	if s.Aborted != "" {
		if _, err := fmt.Fprintf(w, "aborted: %s\n", s.Aborted); err != nil {
			return err
		}
	}
	if s.Valid() {
		_, err := fmt.Fprintln(w, "all blocks valid")
		return err
	}
	return nil
}

// WriteJSON renders the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	return jsonx.EncodeIndent(w, s)
}
