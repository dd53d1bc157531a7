// Package cleaner drives the one-shot CLI flow: scan, group, report,
// then either stop (dry-run), cancel, or delete after confirmation.
package cleaner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/riadafridishibly/dupclean/dedup"
	"github.com/riadafridishibly/dupclean/scanner"
)

// Options configure a single run. Streams and the remove function are
// injectable so the whole flow can be tested against synthetic
// directories without touching stdin or deleting anything real.
type Options struct {
	Dir    string
	DryRun bool

	In     io.Reader // confirmation input, defaults to os.Stdin
	Out    io.Writer // report output, defaults to os.Stdout
	Errout io.Writer // warnings and deletion errors, defaults to os.Stderr

	// Remove deletes a single file. Defaults to os.Remove.
	Remove func(path string) error
}

// Run scans Options.Dir, reports every duplicate set, and then either
// returns (dry-run, no duplicates, or user declined) or deletes the
// candidates. Each deletion is independent: a failure is reported and
// counted but never blocks the remaining candidates. The returned
// error is non-nil only when the directory cannot be enumerated at all.
func Run(opts Options) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Errout == nil {
		opts.Errout = os.Stderr
	}
	if opts.Remove == nil {
		opts.Remove = os.Remove
	}

	records, err := scanner.ScanDir(opts.Dir, func(path string, err error) {
		fmt.Fprintf(opts.Errout, "Warning: skipping %s: %v\n", path, err)
	})
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", opts.Dir, err)
	}

	// Grouping happens exactly once. The same slice backs the preview
	// and the deletion pass, so they cannot diverge.
	sets := dedup.Group(records)
	if len(sets) == 0 {
		fmt.Fprintln(opts.Out, "\nNo duplicates found!")
		return nil
	}

	filesToDelete := 0
	var reclaimable int64
	for i := range sets {
		s := &sets[i]
		filesToDelete += len(s.Files) - 1
		reclaimable += s.Reclaimable()

		fmt.Fprintln(opts.Out, "\n--- Duplicate Set ---")
		fmt.Fprintf(opts.Out, "Normalized filename: %s\n", s.Key)
		fmt.Fprintf(opts.Out, "Size: %d bytes (%s)\n", s.Size, humanize.Bytes(uint64(s.Size)))
		fmt.Fprintf(opts.Out, "Keeping: %s\n", s.Keeper().Path)
		for _, c := range s.Candidates() {
			if opts.DryRun {
				fmt.Fprintf(opts.Out, "Would delete: %s\n", c.Path)
			} else {
				fmt.Fprintf(opts.Out, "Will delete: %s\n", c.Path)
			}
		}
	}

	fmt.Fprintln(opts.Out, "\n================================")
	fmt.Fprintf(opts.Out, "Summary: Found %d duplicate set(s)\n", len(sets))
	fmt.Fprintf(opts.Out, "Total files to delete: %d\n", filesToDelete)
	fmt.Fprintf(opts.Out, "Total reclaimable: %s\n", humanize.Bytes(uint64(reclaimable)))

	if opts.DryRun {
		fmt.Fprintln(opts.Out, "\n[DRY RUN MODE] No files were deleted.")
		fmt.Fprintln(opts.Out, "Run without --dry-run to actually delete files.")
		return nil
	}

	fmt.Fprint(opts.Out, "\nProceed with deletion? (y/N): ")
	if !confirmed(opts.In) {
		fmt.Fprintln(opts.Out, "Deletion cancelled.")
		return nil
	}

	fmt.Fprintln(opts.Out, "\nDeleting files...")
	deleted, errCount := 0, 0
	for i := range sets {
		for _, c := range sets[i].Candidates() {
			if err := opts.Remove(c.Path); err != nil {
				fmt.Fprintf(opts.Errout, "Error deleting %s: %v\n", c.Path, err)
				errCount++
				continue
			}
			fmt.Fprintf(opts.Out, "Deleted: %s\n", c.Path)
			deleted++
		}
	}

	fmt.Fprintln(opts.Out, "\n================================")
	fmt.Fprintln(opts.Out, "Deletion complete!")
	fmt.Fprintf(opts.Out, "Files deleted: %d\n", deleted)
	if errCount > 0 {
		fmt.Fprintf(opts.Out, "Errors encountered: %d\n", errCount)
	}
	return nil
}

// confirmed reads one line and accepts only y/yes, case-insensitive.
// Empty input, EOF, or anything else declines.
func confirmed(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
