// Package idgen produces entity identifiers of the form
// PREFIX-<base36 millisecond timestamp><4 random base36 chars>, uppercased.
// The format is part of the stored data shape. Identifiers are collision
// resistant in practice for a single process, not formally unique.
package idgen

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const suffixLen = 4

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns a fresh identifier with the given prefix.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var sb strings.Builder
	mu.Lock()
	for i := 0; i < suffixLen; i++ {
		sb.WriteByte(base36[rng.Intn(len(base36))])
	}
	mu.Unlock()

	return prefix + "-" + strings.ToUpper(ts+sb.String())
}
