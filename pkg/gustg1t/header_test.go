package gustg1t

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() hclog.Logger {
	return hclog.NewNullLogger()
}

func buildMinimalHeaderBytes(t *testing.T, totalSize uint32, textureCount uint32, platform uint32, extraSize uint32) []byte {
	t.Helper()
	buf := make([]byte, headerByteSize)
	copy(buf[0:4], magicLittleEndian[:])
	copy(buf[4:8], []byte("0064"))
	binary.LittleEndian.PutUint32(buf[8:12], totalSize)
	binary.LittleEndian.PutUint32(buf[12:16], 28+4*textureCount)
	binary.LittleEndian.PutUint32(buf[16:20], textureCount)
	binary.LittleEndian.PutUint32(buf[20:24], platform)
	binary.LittleEndian.PutUint32(buf[24:28], extraSize)
	buf = append(buf, make([]byte, 4*textureCount)...)
	return buf
}

func TestReadHeaderInvalidMagic(t *testing.T) {
	buf := make([]byte, headerByteSize)
	copy(buf[0:4], []byte("XXXX"))
	r := bytes.NewReader(buf)

	_, _, err := readHeader(r, testLogger())
	require.ErrorIs(t, err, ErrInvalidHeaderMagic)
}

func TestReadHeaderInvalidTotalSize(t *testing.T) {
	buf := buildMinimalHeaderBytes(t, 9999, 0, uint32(Windows), 0)
	r := bytes.NewReader(buf)

	_, _, err := readHeader(r, testLogger())
	var sizeErr *InvalidTotalSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, uint32(9999), sizeErr.Expected)
	assert.Equal(t, uint32(len(buf)), sizeErr.Actual)
}

func TestReadHeaderInvalidExtraSize(t *testing.T) {
	buf := buildMinimalHeaderBytes(t, 0, 0, uint32(Windows), 3)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(buf)))
	r := bytes.NewReader(buf)

	_, _, err := readHeader(r, testLogger())
	require.ErrorIs(t, err, ErrInvalidExtraSize)
}

func TestReadHeaderUnknownPlatform(t *testing.T) {
	buf := buildMinimalHeaderBytes(t, 0, 0, 0xFF, 0)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(buf)))
	r := bytes.NewReader(buf)

	_, _, err := readHeader(r, testLogger())
	require.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestReadHeaderBigEndianRecognizedNotDecoded(t *testing.T) {
	buf := make([]byte, headerByteSize)
	copy(buf[0:4], magicBigEndian[:])
	copy(buf[4:8], []byte("0064"))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(Windows))
	r := bytes.NewReader(buf)

	header, flags, err := readHeader(r, testLogger())
	require.NoError(t, err)
	assert.Equal(t, bigEndian, header.Order)
	assert.Empty(t, flags)
}
