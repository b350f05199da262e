// Package subtasks reads and writes the checkbox section embedded in a
// reminder's notes. Subtasks are a textual convention, not a stored
// entity: the backing store has no concept of them.
package subtasks

import "strings"

// Marker is the reserved line that opens the subtask section.
const Marker = "--- Subtasks ---"

const (
	openPrefix = "- [ ] "
	donePrefix = "- [x] "
)

// Subtask is one checkbox line from the section.
type Subtask struct {
	Text string
	Done bool
}

// Append adds a subtask line to the notes, creating the marker section
// if it is absent. Returns the rewritten notes.
func Append(notes, text string) string {
	line := openPrefix + text

	if !strings.Contains(notes, Marker) {
		if notes == "" {
			return Marker + "\n" + line
		}
		return notes + "\n\n" + Marker + "\n" + line
	}

	return strings.TrimRight(notes, "\n") + "\n" + line
}

// Parse returns the subtasks found after the marker line. Notes without
// a marker section yield nil.
func Parse(notes string) []Subtask {
	_, section, found := strings.Cut(notes, Marker)
	if !found {
		return nil
	}

	var subs []Subtask
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, openPrefix):
			subs = append(subs, Subtask{Text: strings.TrimPrefix(line, openPrefix)})
		case strings.HasPrefix(line, donePrefix):
			subs = append(subs, Subtask{Text: strings.TrimPrefix(line, donePrefix), Done: true})
		}
	}
	return subs
}
