package gustpak

import (
	"fmt"
	"io"
)

// XorReader decrypts a seekable byte source with a repeating XOR key of at
// most 32 bytes. Unlike a naive implementation that advances a private
// counter on every read, it derives the keystream index from the
// underlying stream's absolute position at read time — via Seek(0,
// io.SeekCurrent) — so the keystream stays correctly aligned across
// arbitrary seeks. A counter-based variant desynchronizes the moment a
// caller seeks instead of reading sequentially from the start.
type XorReader struct {
	inner io.ReadSeeker
	key   [32]byte
	keyLen int
}

// NewXorReader wraps inner with a decrypting XorReader using key. key must
// be at most 32 bytes long.
func NewXorReader(inner io.ReadSeeker, key []byte) (*XorReader, error) {
	if len(key) > 32 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrKeyTooLong, len(key))
	}
	r := &XorReader{inner: inner, keyLen: len(key)}
	copy(r.key[:], key)
	return r, nil
}

// Read implements io.Reader.
func (r *XorReader) Read(p []byte) (int, error) {
	pos, err := r.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	n, err := r.inner.Read(p)
	if r.keyLen > 0 {
		for i := 0; i < n; i++ {
			p[i] ^= r.key[(pos+int64(i))%int64(r.keyLen)]
		}
	}
	return n, err
}

// Seek implements io.Seeker; it passes through to the underlying source
// unchanged. The keystream is re-derived from the new position on the next
// Read, so no state needs updating here.
func (r *XorReader) Seek(offset int64, whence int) (int64, error) {
	return r.inner.Seek(offset, whence)
}
