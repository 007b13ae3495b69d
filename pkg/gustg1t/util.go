package gustg1t

import "io"

// streamLen returns the total length of a seekable stream, restoring its
// current position afterward. Go's io.Seeker has no built-in equivalent of
// Rust's (then-unstable) Seek::stream_len.
func streamLen(s io.ReadSeeker) (int64, error) {
	current, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if end != current {
		if _, err := s.Seek(current, io.SeekStart); err != nil {
			return 0, err
		}
	}
	return end, nil
}
