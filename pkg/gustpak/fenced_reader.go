package gustpak

import (
	"fmt"
	"io"
)

// FencedReader restricts reads and seeks on a seekable source to a
// [start, end) window, translating logical position 0 to the source's
// absolute start position. It is the seekable counterpart to io.LimitReader,
// which drops seeking.
type FencedReader struct {
	inner   io.ReadSeeker
	start   int64
	end     int64
	current int64
}

// TakeFence creates a FencedReader beginning at inner's current position and
// extending length bytes. It verifies the fence is representable by seeking
// to the end and back before returning.
func TakeFence(inner io.ReadSeeker, length int64) (*FencedReader, error) {
	current, err := inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	start := current
	end := start + length

	if _, err := inner.Seek(end, io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := inner.Seek(current, io.SeekStart); err != nil {
		return nil, err
	}

	return &FencedReader{inner: inner, start: start, end: end, current: current}, nil
}

// Read implements io.Reader, clipping reads so they never cross the fence's
// end.
func (f *FencedReader) Read(p []byte) (int, error) {
	allowed := f.end - f.current
	if allowed <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > allowed {
		p = p[:allowed]
	}

	n, err := f.inner.Read(p)
	f.current += int64(n)
	return n, err
}

// Seek implements io.Seeker. The resulting absolute position must lie in
// [start, end]; positions outside that range fail with ErrSeekOutOfBounds.
// The returned offset is relative to the fence's start.
func (f *FencedReader) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = f.start + offset
	case io.SeekEnd:
		newPos = f.end + offset
	case io.SeekCurrent:
		newPos = f.current + offset
	default:
		return 0, fmt.Errorf("fenced reader: invalid whence %d", whence)
	}

	if newPos < f.start || newPos > f.end {
		return 0, fmt.Errorf("%w: position %d not in [%d, %d]", ErrSeekOutOfBounds, newPos, f.start, f.end)
	}

	seekTo, err := f.inner.Seek(newPos, io.SeekStart)
	if err != nil {
		return 0, err
	}
	f.current = seekTo
	return seekTo - f.start, nil
}
