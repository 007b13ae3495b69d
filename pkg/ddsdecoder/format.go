// Package ddsdecoder decodes BC1, BC3, and BC7 block-compressed texture
// data into tightly-packed RGBA8 buffers.
package ddsdecoder

import "fmt"

// Format identifies a block-compression scheme.
type Format uint8

const (
	FormatBC1 Format = iota
	FormatBC3
	FormatBC7
)

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "BC1"
	case FormatBC3:
		return "BC3"
	case FormatBC7:
		return "BC7"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Decode decodes data (raw, tightly-packed compressed blocks) into an RGBA8
// buffer of exactly width*height*4 bytes, trimming any trailing-block
// padding introduced when width or height is not a multiple of 4.
func Decode(format Format, data []byte, width, height int) ([]byte, error) {
	switch format {
	case FormatBC1:
		return decodeBC1Image(data, width, height), nil
	case FormatBC3:
		return decodeBC3Image(data, width, height), nil
	case FormatBC7:
		return decodeBC7Image(data, width, height)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
