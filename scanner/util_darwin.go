//go:build darwin

package scanner

import (
	"os"
	"syscall"
	"time"
)

func birthTime(_ string, info os.FileInfo) (time.Time, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), nil
}
