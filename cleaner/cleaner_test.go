package cleaner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeTimed creates a file and pins its mod time, so keeper selection
// is stable on platforms that fall back to mod time. Creation order
// matters too (birth-time platforms), so callers create keepers first.
func writeTimed(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

// dupDir builds a directory containing one duplicate pair (photo.jpg is
// the older original) and one unique file.
func dupDir(t *testing.T) (dir, keeper, dup string) {
	t.Helper()
	dir = t.TempDir()
	now := time.Now()
	keeper = writeTimed(t, dir, "photo.jpg", "AAAA", now.Add(-time.Hour))
	time.Sleep(10 * time.Millisecond) // distinct birth times
	dup = writeTimed(t, dir, "photo (1).jpg", "BBBB", now)
	writeTimed(t, dir, "unique.txt", "solo", now)
	return dir, keeper, dup
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTimed(t, dir, "one.txt", "a", now)
	writeTimed(t, dir, "two.txt", "bb", now)

	var out bytes.Buffer
	err := Run(Options{
		Dir: dir,
		In:  strings.NewReader("y\n"), // must never be read
		Out: &out, Errout: &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "No duplicates found!") {
		t.Errorf("missing no-duplicates notice in:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Proceed with deletion?") {
		t.Errorf("confirmation prompt offered with zero sets:\n%s", out.String())
	}
}

func TestRunDryRun(t *testing.T) {
	dir, keeper, dup := dupDir(t)

	var out bytes.Buffer
	err := Run(Options{
		Dir:    dir,
		DryRun: true,
		In:     strings.NewReader("y\n"), // no prompt in dry-run
		Out:    &out, Errout: &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !exists(keeper) || !exists(dup) {
		t.Error("dry-run mutated the filesystem")
	}
	got := out.String()
	if !strings.Contains(got, "Would delete: "+dup) {
		t.Errorf("missing would-delete line in:\n%s", got)
	}
	if strings.Contains(got, "Will delete:") {
		t.Errorf("dry-run printed a will-delete line:\n%s", got)
	}
	if !strings.Contains(got, "[DRY RUN MODE] No files were deleted.") {
		t.Errorf("missing dry-run notice in:\n%s", got)
	}
	if strings.Contains(got, "Proceed with deletion?") {
		t.Errorf("dry-run offered a prompt:\n%s", got)
	}
}

func TestRunCancelled(t *testing.T) {
	for _, input := range []string{"n\n", "\n", "", "nope\n", "Y es\n"} {
		dir, keeper, dup := dupDir(t)

		var out bytes.Buffer
		err := Run(Options{
			Dir: dir,
			In:  strings.NewReader(input),
			Out: &out, Errout: &out,
		})
		if err != nil {
			t.Fatalf("Run(%q): %v", input, err)
		}
		if !exists(keeper) || !exists(dup) {
			t.Errorf("input %q mutated the filesystem", input)
		}
		if !strings.Contains(out.String(), "Deletion cancelled.") {
			t.Errorf("input %q: missing cancellation notice in:\n%s", input, out.String())
		}
	}
}

func TestRunConfirmed(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "YES\n"} {
		dir, keeper, dup := dupDir(t)

		var out bytes.Buffer
		err := Run(Options{
			Dir: dir,
			In:  strings.NewReader(input),
			Out: &out, Errout: &out,
		})
		if err != nil {
			t.Fatalf("Run(%q): %v", input, err)
		}

		if !exists(keeper) {
			t.Errorf("input %q deleted the keeper", input)
		}
		if exists(dup) {
			t.Errorf("input %q left the duplicate behind", input)
		}
		got := out.String()
		if !strings.Contains(got, "Keeping: "+keeper) {
			t.Errorf("input %q: missing keeper line in:\n%s", input, got)
		}
		if !strings.Contains(got, "Files deleted: 1") {
			t.Errorf("input %q: missing deleted count in:\n%s", input, got)
		}
	}
}

func TestRunDeleteFailuresAreIndependent(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeTimed(t, dir, "a.txt", "1234", now.Add(-time.Hour))
	time.Sleep(10 * time.Millisecond)
	aDup := writeTimed(t, dir, "a (1).txt", "5678", now)
	writeTimed(t, dir, "b.txt", "abcd", now.Add(-time.Hour))
	time.Sleep(10 * time.Millisecond)
	bDup := writeTimed(t, dir, "b (1).txt", "efgh", now)

	var out bytes.Buffer
	removed := map[string]bool{}
	err := Run(Options{
		Dir: dir,
		In:  strings.NewReader("y\n"),
		Out: &out, Errout: &out,
		Remove: func(path string) error {
			if path == aDup {
				return errors.New("permission denied")
			}
			removed[path] = true
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !removed[bDup] {
		t.Error("failure on one candidate blocked the rest")
	}
	got := out.String()
	if !strings.Contains(got, "Files deleted: 1") {
		t.Errorf("missing deleted count in:\n%s", got)
	}
	if !strings.Contains(got, "Errors encountered: 1") {
		t.Errorf("missing error count in:\n%s", got)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{
		Dir: filepath.Join(t.TempDir(), "absent"),
		In:  strings.NewReader(""),
		Out: &out, Errout: &out,
	})
	if err == nil {
		t.Fatal("Run on a missing directory returned nil error")
	}
}

func TestRunReportsSummary(t *testing.T) {
	dir, _, _ := dupDir(t)

	var out bytes.Buffer
	if err := Run(Options{Dir: dir, DryRun: true, Out: &out, Errout: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"--- Duplicate Set ---",
		"Normalized filename: photo.jpg",
		"Size: 4 bytes",
		"Summary: Found 1 duplicate set(s)",
		"Total files to delete: 1",
		"Total reclaimable:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
