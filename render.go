package line

import (
	"bytes"
	"fmt"
	"io"
)

type renderer struct {
	w            io.Writer
	alertEnabled bool

	// maxWidth is the widest prompt+line drawn so far in this session; erasing
	// that many columns always covers whatever was on screen before.
	maxWidth int
}

func newRenderer(w io.Writer, alertEnabled bool) *renderer {
	return &renderer{w: w, alertEnabled: alertEnabled}
}

func (r *renderer) render(prompt string, buf *Buffer) error {
	outputBuffer := bytes.NewBuffer(nil)

	vtClearLine(r.maxWidth, outputBuffer)
	outputBuffer.WriteString(prompt)
	outputBuffer.WriteString(buf.String())
	vtMoveLeft(buf.Tail(), outputBuffer)

	r.maxWidth = max(r.maxWidth, len(prompt)+buf.Len())

	_, err := r.w.Write(outputBuffer.Bytes())
	return err
}

func (r *renderer) alert() error {
	if !r.alertEnabled {
		return nil
	}
	_, err := r.w.Write([]byte{'\a'})
	return err
}

func (r *renderer) finish() error {
	_, err := io.WriteString(r.w, "\r\n")
	return err
}

func vtClearLine(width int, w io.Writer) {
	_, _ = io.WriteString(w, "\r")
	if width > 0 {
		_, _ = w.Write(bytes.Repeat([]byte{' '}, width))
		_, _ = io.WriteString(w, "\r")
	}
}

func vtMoveLeft(count int, w io.Writer) {
	if count > 0 {
		_, _ = fmt.Fprintf(w, "\x1b[%dD", count)
	}
}
