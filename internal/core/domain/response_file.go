package domain

import "strings"

// ResponseFile is an argument file whose lines are passed to the linker as a single @-reference.
type ResponseFile struct {
	Path  string   `json:"path"`
	Lines []string `json:"lines"`
}

// Content returns the file body, one line per entry with a trailing newline.
func (r ResponseFile) Content() []byte {
	if len(r.Lines) == 0 {
		return nil
	}
	return []byte(strings.Join(r.Lines, "\n") + "\n")
}
