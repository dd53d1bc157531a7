package scanner

import (
	"errors"
	"os"
	"time"
)

var errNoBirthTime = errors.New("birth time not available")

// Timestamp returns the time used to order duplicates: the platform
// birth (creation) time when one is reported, otherwise the
// modification time. The bool is true when the fallback was used. An
// error means neither time is usable and the entry should be skipped.
func Timestamp(path string, info os.FileInfo) (time.Time, bool, error) {
	if t, err := birthTime(path, info); err == nil && !t.IsZero() {
		return t, false, nil
	}
	mod := info.ModTime()
	if mod.IsZero() {
		return time.Time{}, false, errors.New("no creation or modification time")
	}
	return mod, true, nil
}
