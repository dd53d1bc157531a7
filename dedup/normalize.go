// Package dedup implements the duplicate-detection engine: filename
// normalization, two-level grouping by normalized name and exact size,
// and keeper selection within each duplicate set.
package dedup

import (
	"regexp"
	"strings"
)

// Copy-suffix patterns in precedence order. The more specific patterns
// come first so " - Copy (2)" is not half-eaten by the bare "(2)" rule.
// Matching is case-sensitive, mirroring what the OSes actually generate.
var copySuffixes = []*regexp.Regexp{
	regexp.MustCompile(` copy \d+$`),       // "file copy 2"
	regexp.MustCompile(` copy$`),           // "file copy"
	regexp.MustCompile(` - Copy \(\d+\)$`), // "file - Copy (2)"
	regexp.MustCompile(` - Copy$`),         // "file - Copy"
	regexp.MustCompile(` \(\d+\)$`),        // "file (1)"
	regexp.MustCompile(`\(\d+\)$`),         // "file(1)"
}

// Normalize maps a filename to its canonical form with any OS-generated
// copy suffix stripped from the stem. The stem/extension split happens
// at the last dot. Only the first matching pattern is applied; a name
// that matches nothing comes back unchanged.
//
// A stem that deliberately ends in something like "(2)" is still
// stripped. That is a known limit of the heuristic, not a bug.
func Normalize(filename string) string {
	stem, ext, hasExt := splitExt(filename)
	for _, re := range copySuffixes {
		if loc := re.FindStringIndex(stem); loc != nil {
			stem = stem[:loc[0]]
			break
		}
	}
	if hasExt {
		return stem + "." + ext
	}
	return stem
}

func splitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
