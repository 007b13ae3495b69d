package gustg1t

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

const headerByteSize = 28

var (
	magicLittleEndian = [4]byte{'G', '1', 'T', 'G'}
	magicBigEndian    = [4]byte{'G', 'T', '1', 'G'}
)

// byteOrder recognizes which of the two magics a container declared.
type byteOrder uint8

const (
	littleEndian byteOrder = iota
	bigEndian
)

// Header is the fixed 28-byte G1T prelude.
type Header struct {
	Order       byteOrder
	Version     uint16
	TotalSize   uint32
	HeaderSize  uint32
	TextureCount uint32
	Platform    Platform
	ExtraSize   uint32
}

func readHeader(source io.ReadSeeker, logger hclog.Logger) (Header, []uint32, error) {
	buf := make([]byte, headerByteSize)
	if _, err := io.ReadFull(source, buf); err != nil {
		return Header{}, nil, err
	}

	var magic [4]byte
	copy(magic[:], buf[0:4])

	var order byteOrder
	switch magic {
	case magicLittleEndian:
		order = littleEndian
	case magicBigEndian:
		order = bigEndian
		logger.Warn("g1t container is big-endian; only its header is recognized, not decoded")
	default:
		return Header{}, nil, fmt.Errorf("%w: %x", ErrInvalidHeaderMagic, magic)
	}

	versionDigits := buf[4:8]
	version, err := strconv.ParseUint(string(versionDigits), 10, 16)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrVersionParse, err)
	}
	if hundreds := version / 100; hundreds != 0 && hundreds != 1 {
		logger.Warn("potentially unsupported g1t version", "version", version)
	}

	totalSize := binary.LittleEndian.Uint32(buf[8:12])
	headerSize := binary.LittleEndian.Uint32(buf[12:16])
	textureCount := binary.LittleEndian.Uint32(buf[16:20])
	platformCode := binary.LittleEndian.Uint32(buf[20:24])
	extraSize := binary.LittleEndian.Uint32(buf[24:28])

	realSize, err := streamLen(source)
	if err != nil {
		return Header{}, nil, err
	}
	if totalSize != uint32(realSize) {
		return Header{}, nil, &InvalidTotalSizeError{Expected: totalSize, Actual: uint32(realSize)}
	}

	platform, ok := platformFromCode(platformCode)
	if !ok {
		return Header{}, nil, fmt.Errorf("%w: 0x%x", ErrUnknownPlatform, platformCode)
	}

	if extraSize > 0xFFFF || extraSize%4 != 0 {
		return Header{}, nil, fmt.Errorf("%w: 0x%x", ErrInvalidExtraSize, extraSize)
	}

	globalFlags := make([]uint32, textureCount)
	flagsBuf := make([]byte, 4*textureCount)
	if _, err := io.ReadFull(source, flagsBuf); err != nil {
		return Header{}, nil, err
	}
	for i := range globalFlags {
		globalFlags[i] = binary.LittleEndian.Uint32(flagsBuf[i*4 : i*4+4])
	}

	return Header{
		Order:        order,
		Version:      uint16(version),
		TotalSize:    totalSize,
		HeaderSize:   headerSize,
		TextureCount: textureCount,
		Platform:     platform,
		ExtraSize:    extraSize,
	}, globalFlags, nil
}
