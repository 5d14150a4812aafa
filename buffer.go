package line

// Buffer is the line being edited. The cursor sits before the byte at its
// offset, so it ranges over [0, Len()].
type Buffer struct {
	data   []byte
	cursor int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) String() string {
	return string(b.data)
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

// Tail is the number of bytes between the cursor and the end of the line.
func (b *Buffer) Tail() int {
	return len(b.data) - b.cursor
}

func (b *Buffer) Insert(ch byte) {
	if b.cursor == len(b.data) {
		b.data = append(b.data, ch)
		b.cursor = len(b.data)
		return
	}

	data := make([]byte, 0, len(b.data)+1)
	data = append(data, b.data[:b.cursor]...)
	data = append(data, ch)
	b.data = append(data, b.data[b.cursor:]...)
	b.cursor++
}

func (b *Buffer) DeleteBefore() bool {
	if b.cursor == 0 {
		return false
	}
	b.data = append(b.data[:b.cursor-1], b.data[b.cursor:]...)
	b.cursor--
	return true
}

// MoveCursor shifts the cursor by delta. A move that would leave [0, Len()]
// is refused and the buffer is left untouched.
func (b *Buffer) MoveCursor(delta int) bool {
	next := b.cursor + delta
	if next < 0 || next > len(b.data) {
		return false
	}
	b.cursor = next
	return true
}

func (b *Buffer) ReplaceAll(content string) {
	b.data = append(b.data[:0], content...)
	b.cursor = len(b.data)
}
