package line

import "strings"

// Completer cycles through the candidates that extend the text typed so far.
// A cycle starts with Begin and lasts until Reset.
type Completer struct {
	candidates []string
	matches    []string
	index      int
	active     bool
}

func NewCompleter(candidates []string) *Completer {
	return &Completer{candidates: append([]string(nil), candidates...)}
}

func (c *Completer) Active() bool {
	return c.active
}

// Begin collects every candidate that starts with prefix (case sensitive) and
// returns the first. Nothing matching leaves the completer inactive.
func (c *Completer) Begin(prefix string) (string, bool) {
	c.Reset()
	for _, candidate := range c.candidates {
		if strings.HasPrefix(candidate, prefix) {
			c.matches = append(c.matches, candidate)
		}
	}
	if len(c.matches) == 0 {
		return "", false
	}
	c.active = true
	return c.matches[0], true
}

func (c *Completer) Next() string {
	if !c.active {
		return ""
	}
	c.index = (c.index + 1) % len(c.matches)
	return c.matches[c.index]
}

func (c *Completer) Reset() {
	c.matches = c.matches[:0]
	c.index = 0
	c.active = false
}
