package state

import (
	"log/slog"
	"sync"
	"time"
)

type OpKind string

const (
	OpStroke OpKind = "stroke" // a finished pen or eraser gesture
	OpShape  OpKind = "shape"  // a committed line, rectangle or circle
	OpClear  OpKind = "clear"  // the canvas was wiped with the background
)

// Op records one change committed to the canvas.
type Op struct {
	ID     string    `json:"id"`
	Seq    uint64    `json:"seq"`
	Kind   OpKind    `json:"kind"`
	Tool   Tool      `json:"tool"`
	Color  Color     `json:"color"`
	Width  float64   `json:"width"`
	Anchor Point     `json:"anchor"`
	End    Point     `json:"end"`
	Points int       `json:"points"`
	Time   time.Time `json:"time"`
}

// Journal is an append-only record of committed ops. It backs the status
// line and the logs; it is not an undo history.
type Journal struct {
	clock      *Clock
	ops     []Op
	clearAt int // index of the first op after the most recent clear
	logger  *slog.Logger
	now     func() time.Time
	mu      sync.RWMutex
}

// NewJournal creates an empty journal. A nil logger uses slog.Default.
func NewJournal(logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{
		clock:  NewClock(),
		ops:    make([]Op, 0, 64),
		logger: logger.With("component", "journal"),
		now:    time.Now,
	}
}

// Record stamps op with an id, sequence number and time, appends it and
// returns the stamped copy.
func (j *Journal) Record(op Op) Op {
	j.mu.Lock()
	defer j.mu.Unlock()

	op.Seq, op.ID = j.clock.Next()
	op.Time = j.now()
	j.ops = append(j.ops, op)
	if op.Kind == OpClear {
		j.clearAt = len(j.ops)
	}

	j.logger.Debug("op recorded",
		"id", op.ID,
		"kind", op.Kind,
		"tool", op.Tool.String(),
		"points", op.Points,
	)
	return op
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.ops)
}

// SinceClear counts drawing ops recorded after the most recent clear.
func (j *Journal) SinceClear() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.ops) - j.clearAt
}

// Last returns the most recent op.
func (j *Journal) Last() (Op, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.ops) == 0 {
		return Op{}, false
	}
	return j.ops[len(j.ops)-1], true
}

// CountByTool tallies the drawing ops recorded since the most recent clear.
func (j *Journal) CountByTool() map[Tool]int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	counts := make(map[Tool]int)
	for _, op := range j.ops[j.clearAt:] {
		counts[op.Tool]++
	}
	return counts
}

// Site returns the session id embedded in every op id.
func (j *Journal) Site() string { return j.clock.Site() }
