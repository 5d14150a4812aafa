package line

import (
	"fmt"
	"io"
)

type sessionState int

const (
	sessionEditing sessionState = iota
	sessionRecalling
	sessionCompleting
	sessionSubmitted
)

func (s sessionState) String() string {
	switch s {
	case sessionEditing:
		return "editing"
	case sessionRecalling:
		return "recalling"
	case sessionCompleting:
		return "completing"
	case sessionSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("sessionState(%d)", int(s))
}

type sessionOptions struct {
	historyEnabled    bool
	completionEnabled bool
	alertEnabled      bool
}

// session is one prompt-to-submit interaction. It is created per ReadLine
// and thrown away once the line is returned.
type session struct {
	opts      sessionOptions
	prompt    string
	history   *History
	completer *Completer
	renderer  *renderer

	buffer      *Buffer
	parser      ParserState
	state       sessionState
	recallIndex int
	// live holds the edited line while a history entry is on display.
	live string
}

func newSession(opts sessionOptions, prompt string, history *History, candidates []string, out io.Writer) *session {
	if history == nil {
		history = NewHistory()
	}
	return &session{
		opts:        opts,
		prompt:      prompt,
		history:     history,
		completer:   NewCompleter(candidates),
		renderer:    newRenderer(out, opts.alertEnabled),
		buffer:      NewBuffer(),
		parser:      StateNormal,
		state:       sessionEditing,
		recallIndex: -1,
	}
}

func (s *session) run(in io.Reader) (string, error) {
	if err := s.renderer.render(s.prompt, s.buffer); err != nil {
		return "", fmt.Errorf("line: write output: %w", err)
	}

	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n == 0 {
			if err == nil {
				continue
			}
			return "", fmt.Errorf("line: read input: %w", err)
		}

		line, done, err := s.feed(b[0])
		if err != nil {
			return "", fmt.Errorf("line: write output: %w", err)
		}
		if done {
			return line, nil
		}
	}
}

// feed runs one byte through decoding, the edit and a redraw.
func (s *session) feed(b byte) (string, bool, error) {
	if b != keyTab && s.state == sessionCompleting {
		s.commitCompletion()
	}

	var (
		ev Event
		ok bool
	)
	s.parser, ev, ok = Parse(s.parser, b)
	if !ok {
		return "", false, nil
	}

	switch ev.Kind {
	case EventSubmit:
		return s.submit()
	case EventInsertChar:
		s.forkRecall()
		s.buffer.Insert(ev.Char)
	case EventDeleteBeforeCursor:
		s.forkRecall()
		s.buffer.DeleteBefore()
	case EventCursorLeft:
		if !s.buffer.MoveCursor(-1) {
			return "", false, s.renderer.alert()
		}
	case EventCursorRight:
		if !s.buffer.MoveCursor(1) {
			return "", false, s.renderer.alert()
		}
	case EventHistoryPrev:
		if !s.recall(s.recallIndex + 1) {
			return "", false, s.renderer.alert()
		}
	case EventHistoryNext:
		if !s.recall(s.recallIndex - 1) {
			return "", false, s.renderer.alert()
		}
	case EventCompletionRequest:
		if !s.opts.completionEnabled {
			return "", false, nil
		}
		if !s.complete() {
			return "", false, s.renderer.alert()
		}
	}

	return "", false, s.renderer.render(s.prompt, s.buffer)
}

func (s *session) submit() (string, bool, error) {
	s.state = sessionSubmitted
	line := Normalize(s.buffer.String())
	if s.opts.historyEnabled && line != "" {
		s.history.Record(line)
	}
	if err := s.renderer.finish(); err != nil {
		return "", false, err
	}
	return line, true, nil
}

// forkRecall turns a recalled entry into an ordinary live line so the next
// edit never touches the history itself.
func (s *session) forkRecall() {
	if s.state != sessionRecalling {
		return
	}
	s.recallIndex = -1
	s.live = ""
	s.state = sessionEditing
}

func (s *session) recall(index int) bool {
	if index < -1 || index >= s.history.Len() {
		return false
	}
	if s.recallIndex == -1 {
		s.live = s.buffer.String()
	}

	s.recallIndex = index
	s.buffer.ReplaceAll(s.history.EntryAt(index, s.live))
	if index == -1 {
		s.live = ""
		s.state = sessionEditing
	} else {
		s.state = sessionRecalling
	}
	return true
}

func (s *session) complete() bool {
	if s.state == sessionCompleting {
		s.buffer.ReplaceAll(s.completer.Next())
		return true
	}

	match, ok := s.completer.Begin(s.buffer.String())
	if !ok {
		return false
	}
	s.forkRecall()
	s.buffer.ReplaceAll(match)
	s.state = sessionCompleting
	return true
}

// commitCompletion ends a tab cycle; whatever candidate is displayed stays in
// the buffer as typed text.
func (s *session) commitCompletion() {
	s.completer.Reset()
	s.state = sessionEditing
}
