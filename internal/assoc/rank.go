package assoc

import (
	"sort"
	"strings"
)

// rankGroups is the popularity table: an ordered list of category groups.
// Extensions in earlier groups sort before extensions in later groups;
// extensions absent from the table sort after everything ranked. The table
// is data, not logic, so reordering a category never touches the comparator.
var rankGroups = [][]string{
	// Images
	{"png", "jpg", "jpeg", "gif"},
	// Documents
	{"doc", "docx", "xls", "xlsx", "ppt", "pptx", "pdf", "txt", "md", "markdown"},
	// Media
	{"mp3", "mp4", "mov", "avi"},
	// Web
	{"html", "htm", "css", "js", "ts", "jsx", "tsx"},
	// Data / config
	{"csv", "json", "xml", "yaml", "yml", "toml"},
	// Archives
	{"zip", "rar", "7z", "tar", "gz"},
}

// rankUnknown sorts unranked extensions after every table entry.
const rankUnknown = int(^uint(0) >> 1)

var rankIndex = buildRankIndex()

func buildRankIndex() map[string]int {
	index := make(map[string]int)
	next := 0
	for _, group := range rankGroups {
		for _, ext := range group {
			if _, ok := index[ext]; !ok {
				index[ext] = next
			}
			next++
		}
	}
	return index
}

func rankOf(extension string) int {
	if rank, ok := rankIndex[strings.ToLower(extension)]; ok {
		return rank
	}
	return rankUnknown
}

// Less reports whether a sorts before b under the ordering policy:
// rank ascending, then extension ascending case-insensitively. Lookup is
// case-insensitive; display casing is never consulted for equality ties
// beyond the fold.
func Less(a, b Association) bool {
	ra, rb := rankOf(a.Extension), rankOf(b.Extension)
	if ra != rb {
		return ra < rb
	}
	return strings.ToLower(a.Extension) < strings.ToLower(b.Extension)
}

// Sorted returns a new slice holding the associations in policy order.
// The input is left untouched so callers can swap lists atomically. The
// sort is stable: rows that compare equal, duplicates included, keep their
// relative order from the gateway.
func Sorted(list []Association) []Association {
	out := make([]Association, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}
