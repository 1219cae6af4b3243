package session

import (
	"io"
	"math/rand"
	"time"

	"BikeShare/internal/dataset"

	"github.com/oklog/ulid/v2"
)

// Iteration is one pass of prompt, load and report. Nothing from it is kept
// once the next pass starts
type Iteration struct {
	ID        string
	StartTime time.Time
	Selection dataset.Selection
	Rows      int
}

// IDs generates monotonic ULIDs for iterations
type IDs struct {
	entropy io.Reader
}

// NewIDs creates an ID generator seeded from the clock
func NewIDs() *IDs {
	return &IDs{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Start begins a new iteration
func (g *IDs) Start() *Iteration {
	now := time.Now()
	return &Iteration{
		ID:        ulid.MustNew(ulid.Timestamp(now), g.entropy).String(),
		StartTime: now,
	}
}
