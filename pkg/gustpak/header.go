package gustpak

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerVersion   = 0x00020000
	headerByteSize  = 16
	maxFileCount    = 0x10000 // 65536, inclusive
)

// Header is the fixed 16-byte PAK prelude.
type Header struct {
	Version    uint32
	FileCount  uint32
	HeaderSize uint32
	Flags      uint32
}

func readHeader(r io.Reader) (Header, error) {
	buf := make([]byte, headerByteSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, err
	}

	h := Header{
		Version:    binary.LittleEndian.Uint32(buf[0:4]),
		FileCount:  binary.LittleEndian.Uint32(buf[4:8]),
		HeaderSize: binary.LittleEndian.Uint32(buf[8:12]),
		Flags:      binary.LittleEndian.Uint32(buf[12:16]),
	}

	if h.Version != headerVersion {
		return Header{}, fmt.Errorf("%w: got 0x%x, expected 0x%x", ErrInvalidHeaderVersion, h.Version, uint32(headerVersion))
	}
	if h.HeaderSize != headerByteSize {
		return Header{}, fmt.Errorf("%w: got %d, expected %d", ErrInvalidHeaderSize, h.HeaderSize, uint32(headerByteSize))
	}
	if h.FileCount > maxFileCount {
		return Header{}, fmt.Errorf("%w: %d (max %d)", ErrTooManyFiles, h.FileCount, uint32(maxFileCount))
	}

	return h, nil
}
