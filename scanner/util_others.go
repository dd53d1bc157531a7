//go:build !darwin && !windows && !linux

package scanner

import (
	"os"
	"time"
)

// No portable birth-time API here, callers fall back to mod time.
func birthTime(_ string, _ os.FileInfo) (time.Time, error) {
	return time.Time{}, errNoBirthTime
}
