package dedup

import (
	"path/filepath"
	"sort"

	"github.com/riadafridishibly/dupclean/scanner"
)

// DuplicateSet is a group of two or more records sharing a normalized
// filename and an exact byte size. Members are ordered by (timestamp,
// path), so the first entry is always the keeper.
type DuplicateSet struct {
	Key   string // normalized filename
	Size  int64
	Files []scanner.FileRecord
}

// Keeper is the record that survives deletion: earliest timestamp,
// path as the tie-break.
func (s *DuplicateSet) Keeper() scanner.FileRecord { return s.Files[0] }

// Candidates are every member except the keeper.
func (s *DuplicateSet) Candidates() []scanner.FileRecord { return s.Files[1:] }

// Reclaimable is the number of bytes freed by deleting the candidates.
func (s *DuplicateSet) Reclaimable() int64 { return s.Size * int64(len(s.Files)-1) }

// Group partitions records by normalized filename, then sub-partitions
// each name group by exact size, and returns every partition with more
// than one member. Same normalized name but a different size means
// "different file", never a duplicate.
//
// The result is fully ordered (sets by key then size, members by
// timestamp then path), so one computed slice serves both the preview
// and the deletion pass and the two always agree.
func Group(records []scanner.FileRecord) []DuplicateSet {
	byName := make(map[string][]scanner.FileRecord)
	for _, rec := range records {
		key := Normalize(filepath.Base(rec.Path))
		byName[key] = append(byName[key], rec)
	}

	var sets []DuplicateSet
	for key, group := range byName {
		if len(group) < 2 {
			continue
		}
		bySize := make(map[int64][]scanner.FileRecord)
		for _, rec := range group {
			bySize[rec.Size] = append(bySize[rec.Size], rec)
		}
		for size, members := range bySize {
			if len(members) < 2 {
				continue
			}
			sort.Slice(members, func(i, j int) bool {
				if !members[i].Timestamp.Equal(members[j].Timestamp) {
					return members[i].Timestamp.Before(members[j].Timestamp)
				}
				return members[i].Path < members[j].Path
			})
			sets = append(sets, DuplicateSet{Key: key, Size: size, Files: members})
		}
	}

	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Key != sets[j].Key {
			return sets[i].Key < sets[j].Key
		}
		return sets[i].Size < sets[j].Size
	})
	return sets
}
