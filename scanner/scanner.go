package scanner

import (
	"io/fs"
	"runtime"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// FileRecord is one regular file considered for deduplication. Records
// are built once during collection and never mutated afterwards.
type FileRecord struct {
	Path string
	Size int64

	// Timestamp orders duplicates: birth (creation) time when the
	// platform reports one, otherwise the modification time.
	Timestamp time.Time

	// ModTimeFallback is set when Timestamp came from the modification
	// time because no creation time was available.
	ModTimeFallback bool
}

// WarnFunc receives per-entry problems during a scan. One bad entry
// never aborts the scan.
type WarnFunc func(path string, err error)

// ScanDir enumerates exactly one level of dir and returns a record for
// every regular file whose metadata could be read. Subdirectories are
// not descended into. Entries with unreadable metadata or no usable
// timestamp are skipped through warn. The returned error is non-nil
// only when dir itself cannot be enumerated.
func ScanDir(dir string, warn WarnFunc) ([]FileRecord, error) {
	conf := fastwalk.Config{Follow: false, NumWorkers: runtime.NumCPU()}

	var mu sync.Mutex
	var records []FileRecord
	var rootErr error

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				mu.Lock()
				rootErr = err
				mu.Unlock()
				return fs.SkipAll
			}
			mu.Lock()
			warn(path, err)
			mu.Unlock()
			return nil
		}

		if d.IsDir() {
			if path == dir {
				return nil
			}
			return fastwalk.SkipDir
		}

		// Symlinks, sockets etc. are not candidates for deletion.
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			mu.Lock()
			warn(path, err)
			mu.Unlock()
			return nil
		}

		ts, fallback, err := Timestamp(path, info)
		if err != nil {
			mu.Lock()
			warn(path, err)
			mu.Unlock()
			return nil
		}

		mu.Lock()
		records = append(records, FileRecord{
			Path:            path,
			Size:            info.Size(),
			Timestamp:       ts,
			ModTimeFallback: fallback,
		})
		mu.Unlock()
		return nil
	}

	if err := fastwalk.Walk(&conf, dir, walkFn); err != nil {
		return nil, err
	}
	if rootErr != nil {
		return nil, rootErr
	}
	return records, nil
}
