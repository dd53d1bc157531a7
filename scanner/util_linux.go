//go:build linux

package scanner

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Linux only exposes birth time through statx, and not every filesystem
// fills it in.
func birthTime(path string, _ os.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
