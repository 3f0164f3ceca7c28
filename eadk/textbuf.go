package eadk

import "errors"

// TextBufSize is the stack buffer size used by the print helpers. One byte
// of it is kept for the NUL terminator.
const TextBufSize = 1024

// ErrTextOverflow is returned when a write does not fit in a TextBuf.
var ErrTextOverflow = errors.New("text buffer overflow")

// TextBuf is a formatting target over caller-owned memory. It never grows:
// a write that does not fit is rejected whole and leaves the buffer as it
// was.
type TextBuf struct {
	buf []byte
	off int
}

// NewTextBuf returns a TextBuf writing into buf[:len(buf)].
func NewTextBuf(buf []byte) *TextBuf {
	return &TextBuf{buf: buf}
}

func (t *TextBuf) Write(p []byte) (int, error) {
	if len(t.buf)-t.off < len(p) {
		return 0, ErrTextOverflow
	}
	n := copy(t.buf[t.off:], p)
	t.off += n
	return n, nil
}

func (t *TextBuf) WriteString(s string) (int, error) {
	if len(t.buf)-t.off < len(s) {
		return 0, ErrTextOverflow
	}
	n := copy(t.buf[t.off:], s)
	t.off += n
	return n, nil
}

// Len is the number of bytes written so far.
func (t *TextBuf) Len() int { return t.off }

// Cap is the number of bytes the buffer accepts in total.
func (t *TextBuf) Cap() int { return len(t.buf) }

// Bytes returns the written bytes. The slice aliases the buffer.
func (t *TextBuf) Bytes() []byte { return t.buf[:t.off] }

// Reset discards the written bytes.
func (t *TextBuf) Reset() { t.off = 0 }

// CString stores a NUL after the written bytes and returns them with it.
// The NUL goes in the first unused byte of the backing array, which is the
// spare byte past Cap when the buffer was built over buf[:len(buf)-1]. It
// reports false when there is no room for the terminator.
func (t *TextBuf) CString() ([]byte, bool) {
	full := t.buf[:cap(t.buf)]
	if t.off >= len(full) {
		return nil, false
	}
	full[t.off] = 0
	return full[:t.off+1], true
}
