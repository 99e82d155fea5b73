package schedule

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out task ids that never repeat within a session.
type IDGenerator interface {
	NextID() string
}

// Sequence is a monotonic counter; ids are prefix + decimal count.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NextID() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}
