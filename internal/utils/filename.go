package utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// FileNameGenerator builds stored file names of the form
// "<field>-<unix-millis><ext>".
//
// The millisecond stamp is strictly increasing across all calls on the same
// generator, so files saved within one millisecond still get distinct names.
type FileNameGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewFileNameGenerator() *FileNameGenerator {
	return &FileNameGenerator{now: time.Now}
}

// Generate returns a new name for a file uploaded under fieldName whose
// original name was originalName. Only the extension of originalName is kept.
func (g *FileNameGenerator) Generate(fieldName, originalName string) string {
	return fieldName + "-" + strconv.FormatInt(g.nextStamp(), 10) + Extension(originalName)
}

func (g *FileNameGenerator) nextStamp() int64 {
	now := g.now().UnixMilli()
	for {
		last := g.last.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Extension returns the lower-cased extension of name including the dot,
// or an empty string if name has none.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(filepath.Base(name)))
}
