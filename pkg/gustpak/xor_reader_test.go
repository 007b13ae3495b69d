package gustpak

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

var xorTestKey = []byte{0x12, 0x34, 0x56, 0x78}
var xorTestPlain = []byte("Hello, world!")
var xorTestCipher = []byte{0x5a, 0x51, 0x3a, 0x14, 0x7d, 0x18, 0x76, 0x0f, 0x7d, 0x46, 0x3a, 0x1c, 0x33}

func TestXorReaderSingleChunk(t *testing.T) {
	r, err := NewXorReader(bytes.NewReader(xorTestPlain), xorTestKey)
	require.NoError(t, err)

	buf := make([]byte, len(xorTestPlain))
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	require.Equal(t, xorTestCipher, buf)
}

func TestXorReaderUnalignedChunks(t *testing.T) {
	r, err := NewXorReader(bytes.NewReader(xorTestPlain), xorTestKey)
	require.NoError(t, err)

	buf := make([]byte, 13)
	sizes := []int{3, 5, 2, 3}
	offset := 0
	for _, size := range sizes {
		n, err := r.Read(buf[offset : offset+size])
		require.NoError(t, err)
		require.Equal(t, size, n)
		offset += size
	}

	require.Equal(t, xorTestCipher, buf)
}

func TestXorReaderSeekInterleaved(t *testing.T) {
	r, err := NewXorReader(bytes.NewReader(xorTestPlain), xorTestKey)
	require.NoError(t, err)

	buf := make([]byte, 13)

	sought, err := r.Seek(3, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 3, sought)
	_, err = io.ReadFull(r, buf[3:8])
	require.NoError(t, err)

	sought, err = r.Seek(-3, io.SeekEnd)
	require.NoError(t, err)
	require.EqualValues(t, 10, sought)
	_, err = io.ReadFull(r, buf[10:13])
	require.NoError(t, err)

	sought, err = r.Seek(-13, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 0, sought)
	_, err = io.ReadFull(r, buf[0:3])
	require.NoError(t, err)

	sought, err = r.Seek(5, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 8, sought)
	_, err = io.ReadFull(r, buf[8:10])
	require.NoError(t, err)

	require.Equal(t, xorTestCipher, buf)
}

func TestXorReaderRoundTrip(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog, a classic pangram")
	key := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	encodeReader, err := NewXorReader(bytes.NewReader(plain), key)
	require.NoError(t, err)
	ciphertext, err := io.ReadAll(encodeReader)
	require.NoError(t, err)
	require.NotEqual(t, plain, ciphertext)

	decodeReader, err := NewXorReader(bytes.NewReader(ciphertext), key)
	require.NoError(t, err)
	roundTripped, err := io.ReadAll(decodeReader)
	require.NoError(t, err)
	require.Equal(t, plain, roundTripped)
}

func TestXorReaderRejectsOversizedKey(t *testing.T) {
	_, err := NewXorReader(bytes.NewReader(nil), make([]byte, 33))
	require.ErrorIs(t, err, ErrKeyTooLong)
}
