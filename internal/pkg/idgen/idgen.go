// Package idgen hands out plan identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// NewUUID returns random v4 IDs, e.g. plan_5f0c...; an empty prefix returns the bare UUID
func NewUUID(prefix string) Generator {
	return withPrefix(prefix, uuid.NewString)
}

// NewSequential returns prefix_1, prefix_2, ... and is meant for tests
func NewSequential(prefix string) Generator {
	var counter atomic.Uint64
	return withPrefix(prefix, func() string {
		return strconv.FormatUint(counter.Add(1), 10)
	})
}

func withPrefix(prefix string, next func() string) Func {
	if prefix == "" {
		return next
	}
	return func() string {
		return prefix + "_" + next()
	}
}
