package multihash

// FixedWriter is an io.Writer over a fixed caller-supplied buffer. A write
// that does not fit fails with InsufficientBufferError instead of truncating.
type FixedWriter struct {
	b []byte
	n int
}

func NewFixedWriter(b []byte) *FixedWriter {
	return &FixedWriter{b: b}
}

func (w *FixedWriter) Write(p []byte) (int, error) {
	if len(p) > len(w.b)-w.n {
		return 0, InsufficientBufferError.Errorf("%d bytes to write, %d left", len(p), len(w.b)-w.n)
	}

	w.n += copy(w.b[w.n:], p)

	return len(p), nil
}

// Bytes returns the written prefix of the underlying buffer.
func (w *FixedWriter) Bytes() []byte {
	return w.b[:w.n]
}

func (w *FixedWriter) Len() int {
	return w.n
}
