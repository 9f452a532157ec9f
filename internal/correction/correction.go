// Package correction holds the line-level review records returned by the
// collaborator and the reduction of an accepted review back into buffer text.
package correction

import (
	"sort"
	"strings"
)

// Correction is one line of a file under review. The collaborator returns
// exactly one record per input line, 1-indexed and order-preserving; when
// IsError is false, Corrected equals Original and Explanation carries no
// meaning.
type Correction struct {
	LineNumber  int    `json:"lineNumber"`
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	IsError     bool   `json:"isError"`
	Explanation string `json:"explanation"`
}

// Set pairs the per-file correction sequences for one request. A Set is
// created whole on a successful request and discarded whole on accept or
// edit-again; it is never partially populated.
type Set struct {
	HTML []Correction
	CSS  []Correction
}

// File is one named sequence of a Set, in review order.
type File struct {
	Name  string
	Lines []Correction
}

// Files returns the set's sequences in fixed review order.
func (s *Set) Files() []File {
	return []File{
		{Name: "HTML", Lines: s.HTML},
		{Name: "CSS", Lines: s.CSS},
	}
}

// IssueCount returns the number of errored lines in a file.
func (f File) IssueCount() int {
	n := 0
	for _, c := range f.Lines {
		if c.IsError {
			n++
		}
	}
	return n
}

// TotalIssues returns the errored line count across both files.
func (s *Set) TotalIssues() int {
	total := 0
	for _, f := range s.Files() {
		total += f.IssueCount()
	}
	return total
}

// Apply reduces the set into the replacement buffer texts: per file, the
// newline join of every Corrected field in ascending line order. An empty
// sequence yields an empty buffer.
func (s *Set) Apply() (html, css string) {
	return joinCorrected(s.HTML), joinCorrected(s.CSS)
}

func joinCorrected(lines []Correction) string {
	if len(lines) == 0 {
		return ""
	}

	ordered := make([]Correction, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LineNumber < ordered[j].LineNumber
	})

	parts := make([]string, len(ordered))
	for i, c := range ordered {
		parts[i] = c.Corrected
	}
	return strings.Join(parts, "\n")
}
