package csvio

import "io"

// bomSkippingReader wraps an io.Reader and drops a leading UTF-8 BOM
// (0xEF 0xBB 0xBF), commonly added by Windows programs.
type bomSkippingReader struct {
	reader  io.Reader
	checked bool
	buf     []byte
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{reader: r}
}

// Read implements io.Reader. On the first call it inspects the first three
// bytes and discards them if they form a BOM.
func (b *bomSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true

		var head [3]byte
		n, err := io.ReadFull(b.reader, head[:])
		if n > 0 {
			if n == 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
				b.buf = nil
			} else {
				b.buf = append(b.buf, head[:n]...)
			}
		}
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}

	if len(b.buf) > 0 {
		n := copy(p, b.buf)
		b.buf = b.buf[n:]
		return n, nil
	}

	return b.reader.Read(p)
}
