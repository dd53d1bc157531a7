//go:build windows

package scanner

import (
	"os"
	"syscall"
	"time"
)

// Creation time comes straight from the directory entry metadata.
func birthTime(_ string, info os.FileInfo) (time.Time, error) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(0, st.CreationTime.Nanoseconds()), nil
}
