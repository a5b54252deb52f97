package dataset

import (
	"sync"

	"github.com/formarank/formarank/internal/metrics"
	"github.com/google/uuid"
)

// Snapshot pairs a Frame with a bin-mapping cache. A cached mapping is
// valid only for the exact frame it was computed from, so deriving a new
// score column goes through WithScore, which clones and drops the stale
// entry. Concurrent trials must each hold their own Snapshot.
type Snapshot struct {
	ID uuid.UUID

	frame *Frame

	mu   sync.Mutex
	bins map[binKey][]int
}

// binKey carries the bin count so evaluators asking for different
// granularities of the same column never share a mapping.
type binKey struct {
	column  string
	numBins int
}

func NewSnapshot(f *Frame) *Snapshot {
	return &Snapshot{
		ID:    uuid.New(),
		frame: f,
		bins:  make(map[binKey][]int),
	}
}

func (s *Snapshot) Frame() *Frame {
	return s.frame
}

// BinsFor returns the equal-frequency bin mapping of a numeric column,
// computing it on first use and reusing it on repeated evaluator calls
// against this snapshot.
func (s *Snapshot) BinsFor(column string, numBins int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := binKey{column: column, numBins: numBins}
	if cached, ok := s.bins[key]; ok {
		return cached, nil
	}

	values, err := s.frame.Numeric(column)
	if err != nil {
		return nil, err
	}

	binned := metrics.MapToBins(values, numBins)
	s.bins[key] = binned
	return binned, nil
}

// WithScore derives a new snapshot carrying the proposed composite score
// column. Unchanged columns and their cached bin mappings are shared;
// the replaced column's cache entry is invalidated. The receiver is left
// untouched, so parallel trials on a common base snapshot never race.
func (s *Snapshot) WithScore(column string, values []float64) (*Snapshot, error) {
	frame := s.frame.clone()
	if err := frame.SetNumeric(column, values); err != nil {
		return nil, err
	}

	next := NewSnapshot(frame)

	s.mu.Lock()
	for key, binned := range s.bins {
		if key.column == column {
			continue
		}
		next.bins[key] = binned
	}
	s.mu.Unlock()

	return next, nil
}
