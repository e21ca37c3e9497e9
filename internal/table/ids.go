package table

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Identifier source kinds accepted by NewIDSource.
const (
	IDSourceULID    = "ulid"
	IDSourceUUID    = "uuid"
	IDSourceCounter = "counter"
)

// defaultCounterPrefix prefixes IDs produced by a counter source built through NewIDSource.
const defaultCounterPrefix = "col-"

// ErrUnknownIDSource is returned by NewIDSource for an unrecognized kind.
var ErrUnknownIDSource = errors.New("unknown id source")

// IDSource hands out identifiers for decorated columns.
// Every call must return a value never returned before by the same source.
// Implementations in this package are safe for concurrent use.
type IDSource interface {
	NextID() string
}

// CounterSource produces deterministic IDs: prefix followed by 1, 2, 3...
// Two sources with the same prefix produce the same sequence.
type CounterSource struct {
	prefix string
	n      atomic.Uint64
}

// NewCounterSource creates a CounterSource with the given prefix.
func NewCounterSource(prefix string) *CounterSource {
	return &CounterSource{prefix: prefix}
}

// NextID implements IDSource.
func (s *CounterSource) NextID() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}

// ULIDSource produces lexicographically sortable ULIDs with monotonic entropy,
// so IDs generated within the same millisecond still sort in creation order.
type ULIDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDSource creates a ULIDSource backed by crypto/rand.
func NewULIDSource() *ULIDSource {
	return &ULIDSource{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// NextID implements IDSource.
func (s *ULIDSource) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

// UUIDSource produces random (version 4) UUIDs.
type UUIDSource struct{}

// NextID implements IDSource.
func (UUIDSource) NextID() string {
	return uuid.NewString()
}

// NewIDSource returns the IDSource registered under kind ("ulid", "uuid" or "counter").
// An empty kind selects ULID.
func NewIDSource(kind string) (IDSource, error) {
	switch kind {
	case "", IDSourceULID:
		return NewULIDSource(), nil
	case IDSourceUUID:
		return UUIDSource{}, nil
	case IDSourceCounter:
		return NewCounterSource(defaultCounterPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s, %s)",
			ErrUnknownIDSource, kind, IDSourceULID, IDSourceUUID, IDSourceCounter)
	}
}
