package line

// History is the log of submitted lines, most recent first. It grows for as
// long as its Editor lives.
type History struct {
	entries []string
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Record(line string) {
	if line == "" {
		return
	}
	h.entries = append([]string{line}, h.entries...)
}

func (h *History) Len() int {
	return len(h.entries)
}

// EntryAt returns the entry for a recall index; -1 stands for the live line.
func (h *History) EntryAt(index int, live string) string {
	if index < 0 || index >= len(h.entries) {
		return live
	}
	return h.entries[index]
}

func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
