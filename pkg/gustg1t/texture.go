package gustg1t

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// texture flag bits within the 40-bit big-endian-assembled flags word.
const (
	flagExtendedData uint64 = 0x00_00_00_00_10
	flagDoubleHeight  uint64 = 0x01_00_00_00_00
)

const (
	extendedDataFramesDepth     = 0x0C
	extendedDataNonStandardW    = 0x10
	extendedDataNonStandardH    = 0x14
)

// textureHeader is the raw 8-byte texture header: three bytes of packed
// fields followed by the five bytes of its 40-bit flags word.
type textureHeader struct {
	zMipmaps    uint8
	mipmaps     uint8
	textureType uint8
	dx          uint8
	dy          uint8
	flags       uint64
}

func (h textureHeader) width() uint32  { return 1 << h.dx }
func (h textureHeader) height() uint32 { return 1 << h.dy }

func readTextureHeader(source io.ReadSeeker) (textureHeader, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(source, buf); err != nil {
		return textureHeader{}, err
	}

	packedMipmaps := buf[0]
	textureType := buf[1]
	packedDimensions := buf[2]

	// flags are the 5 remaining bytes, big-endian-assembled into a 40-bit value
	var flagBytes [8]byte
	copy(flagBytes[3:8], buf[3:8])
	flags := binary.BigEndian.Uint64(flagBytes[:])

	h := textureHeader{
		zMipmaps:    packedMipmaps & 0x0F,
		mipmaps:     (packedMipmaps & 0xF0) >> 4,
		textureType: textureType,
		dx:          packedDimensions & 0x0F,
		dy:          (packedDimensions & 0xF0) >> 4,
		flags:       flags,
	}

	if h.mipmaps == 0 {
		return textureHeader{}, ErrNoMipmaps
	}

	return h, nil
}

// Texture is the logical, post-parse view of one texture entry: absolute
// payload offset, effective dimensions and frame count, plus the raw header
// it was derived from.
type Texture struct {
	header               textureHeader
	Width                uint32
	Height               uint32
	Frames               uint32
	AbsoluteDataOffset    uint64
}

// TypeCode is the raw texture type byte (e.g. 0x59 BC1, 0x5B BC3, 0x5F BC7).
func (t Texture) TypeCode() uint8 { return t.header.textureType }

func readTexture(source io.ReadSeeker, header textureHeader, logger hclog.Logger) (Texture, error) {
	width := header.width()
	height := header.height()
	frames := uint32(1)

	if header.flags&flagExtendedData != 0 {
		var lenBuf [4]byte
		if _, err := io.ReadFull(source, lenBuf[:]); err != nil {
			return Texture{}, err
		}
		extendedLen := binary.LittleEndian.Uint32(lenBuf[:])

		switch extendedLen {
		case extendedDataFramesDepth, extendedDataNonStandardW, extendedDataNonStandardH:
		default:
			return Texture{}, fmt.Errorf("%w: 0x%x", ErrInvalidExtendedDataSize, extendedLen)
		}

		if extendedLen >= extendedDataFramesDepth {
			var depthFlags [8]byte
			if _, err := io.ReadFull(source, depthFlags[:]); err != nil {
				return Texture{}, err
			}
			textureFlags2 := binary.LittleEndian.Uint32(depthFlags[4:8])
			framesFromFlags := ((textureFlags2 >> 28) & 0x0F) + ((textureFlags2 >> 12) & 0xF0)
			if framesFromFlags == 0 {
				frames = 1
			} else {
				frames = framesFromFlags
			}
		}

		if extendedLen >= extendedDataNonStandardW {
			var wBuf [4]byte
			if _, err := io.ReadFull(source, wBuf[:]); err != nil {
				return Texture{}, err
			}
			width = binary.LittleEndian.Uint32(wBuf[:])
			logger.Trace("non-standard width", "width", width)
		}

		if extendedLen >= extendedDataNonStandardH {
			var hBuf [4]byte
			if _, err := io.ReadFull(source, hBuf[:]); err != nil {
				return Texture{}, err
			}
			height = binary.LittleEndian.Uint32(hBuf[:])
			logger.Trace("non-standard height", "height", height)
		}
	}

	absoluteOffset, err := source.Seek(0, io.SeekCurrent)
	if err != nil {
		return Texture{}, err
	}

	return Texture{
		header:             header,
		Width:              width,
		Height:             height,
		Frames:             frames,
		AbsoluteDataOffset: uint64(absoluteOffset),
	}, nil
}
