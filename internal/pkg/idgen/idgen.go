// Package idgen produces reservation tokens.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// UUIDGenerator draws random version 4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix-0001, prefix-0002, ... and is meant for
// tests that assert on reservation ids.
type SequenceGenerator struct {
	prefix string
	n      atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.n.Add(1))
}

// FixedGenerator always returns the same id. Useful to exercise collision handling.
type FixedGenerator string

func (g FixedGenerator) NewID() string {
	return string(g)
}
