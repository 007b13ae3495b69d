// Package gustg1t parses G1T texture container files: a fixed header, a
// per-texture offset table, per-texture headers with nibble-packed fields,
// and an optional extended-attributes block.
package gustg1t

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/holly-hacker/gust-archive/pkg/ddsdecoder"
)

// Container is the parsed result of reading a G1T file's header and texture
// table. It owns its texture metadata and may be read concurrently from
// multiple goroutines once constructed.
type Container struct {
	header   Header
	Textures []Texture
}

// Parse reads a G1T container's header, offset table, and per-texture
// headers from source.
func Parse(source io.ReadSeeker, logger hclog.Logger) (*Container, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	header, globalFlags, err := readHeader(source, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("read g1t header", "texture_count", header.TextureCount, "platform", header.Platform.String())
	_ = globalFlags // carried for parity with the container's declared word count; not yet interpreted downstream

	if header.Order == bigEndian {
		// big-endian containers are recognized but not decoded any further.
		return &Container{header: header}, nil
	}

	if _, err := source.Seek(int64(header.HeaderSize), io.SeekStart); err != nil {
		return nil, err
	}
	offsetBuf := make([]byte, 4*header.TextureCount)
	if _, err := io.ReadFull(source, offsetBuf); err != nil {
		return nil, err
	}
	offsets := make([]uint32, header.TextureCount)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(offsetBuf[i*4 : i*4+4])
	}

	textures := make([]Texture, 0, len(offsets))
	for _, offset := range offsets {
		if _, err := source.Seek(int64(header.HeaderSize)+int64(offset), io.SeekStart); err != nil {
			return nil, err
		}
		th, err := readTextureHeader(source)
		if err != nil {
			return nil, err
		}
		tex, err := readTexture(source, th, logger)
		if err != nil {
			return nil, err
		}
		textures = append(textures, tex)
	}

	return &Container{header: header, Textures: textures}, nil
}

// Decode reads and decodes texture's encoded block data from source,
// returning a tightly packed RGBA8 buffer of length 4*texture.Width*texture.Height.
func (c *Container) Decode(source io.ReadSeeker, texture Texture) ([]byte, error) {
	if texture.Frames > 1 {
		return nil, fmt.Errorf("%w: %d frames", ErrTooManyFrames, texture.Frames)
	}

	format, blockBytes, ok := formatFor(texture.TypeCode())
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedFormat, texture.TypeCode())
	}

	width, height := int(texture.Width), int(texture.Height)
	blocksX := max(1, (width+3)/4)
	blocksY := max(1, (height+3)/4)
	encodedSize := blocksX * blocksY * blockBytes

	if _, err := source.Seek(int64(texture.AbsoluteDataOffset), io.SeekStart); err != nil {
		return nil, err
	}
	encoded := make([]byte, encodedSize)
	if _, err := io.ReadFull(source, encoded); err != nil {
		return nil, err
	}

	return ddsdecoder.Decode(format, encoded, width, height)
}

func formatFor(typeCode uint8) (format ddsdecoder.Format, blockBytes int, ok bool) {
	switch typeCode {
	case 0x59:
		return ddsdecoder.FormatBC1, 8, true
	case 0x5B:
		return ddsdecoder.FormatBC3, 16, true
	case 0x5F:
		return ddsdecoder.FormatBC7, 16, true
	default:
		return 0, 0, false
	}
}
