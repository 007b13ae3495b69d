package gustpak

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holly-hacker/gust-archive/pkg/gustcommon"
)

type testEntrySpec struct {
	name       string
	fileKey    []byte // exact length selects the shape implicitly by caller
	data       []byte
	dataOffset uint64
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func encryptInto(dst []byte, key []byte) {
	for i := range dst {
		dst[i] ^= key[i%len(key)]
	}
}

// buildEntry64ExtArchive builds a minimal PAK archive using the Entry64Ext
// shape (A22/A23/A24), with the given archive key applied on top of each
// entry's own file key exactly as the real format does.
func buildEntry64ExtArchive(t *testing.T, archiveKey []byte, entries []testEntrySpec) []byte {
	t.Helper()
	var buf bytes.Buffer

	putU32(&buf, headerVersion)
	putU32(&buf, uint32(len(entries)))
	putU32(&buf, headerByteSize)
	putU32(&buf, 0) // flags

	payloadOffset := uint64(0)
	for i := range entries {
		entries[i].dataOffset = payloadOffset
		payloadOffset += uint64(len(entries[i].data))
	}

	for _, e := range entries {
		nameBuf := make([]byte, nameBufferSize)
		copy(nameBuf, e.name)

		effectiveKey := deriveEffectiveKey(archiveKey, e.fileKey)
		encryptInto(nameBuf, effectiveKey)
		buf.Write(nameBuf)

		putU32(&buf, uint32(len(e.data)))
		buf.Write(e.fileKey)
		putU32(&buf, 0) // extra
		putU64(&buf, e.dataOffset)
		putU64(&buf, 0) // flags
	}

	for _, e := range entries {
		ciphertext := append([]byte(nil), e.data...)
		effectiveKey := deriveEffectiveKey(archiveKey, e.fileKey)
		encryptInto(ciphertext, effectiveKey)
		buf.Write(ciphertext)
	}

	return buf.Bytes()
}

func buildEntry64Archive(t *testing.T, entries []testEntrySpec) []byte {
	t.Helper()
	var buf bytes.Buffer

	putU32(&buf, headerVersion)
	putU32(&buf, uint32(len(entries)))
	putU32(&buf, headerByteSize)
	putU32(&buf, 0)

	payloadOffset := uint64(0)
	for i := range entries {
		entries[i].dataOffset = payloadOffset
		payloadOffset += uint64(len(entries[i].data))
	}

	for _, e := range entries {
		nameBuf := make([]byte, nameBufferSize)
		copy(nameBuf, e.name)

		encryptInto(nameBuf, e.fileKey)
		buf.Write(nameBuf)

		putU32(&buf, uint32(len(e.data)))
		buf.Write(e.fileKey)
		putU64(&buf, e.dataOffset)
		putU64(&buf, 0)
	}

	for _, e := range entries {
		ciphertext := append([]byte(nil), e.data...)
		encryptInto(ciphertext, e.fileKey)
		buf.Write(ciphertext)
	}

	return buf.Bytes()
}

func TestReadIndexA24SingleFileRoundTrip(t *testing.T) {
	archiveKey := gustcommon.A24.ArchiveKey()
	data := buildEntry64ExtArchive(t, archiveKey, []testEntrySpec{
		{name: "hello.txt", fileKey: make([]byte, 32), data: []byte("Hello World!!")},
	})

	source := bytes.NewReader(data)
	idx, err := ReadIndex(source, gustcommon.A24, nil)
	require.NoError(t, err)
	require.Len(t, idx.Entries, 1)
	require.Equal(t, "hello.txt", idx.Entries[0].Name)
	require.EqualValues(t, 13, idx.Entries[0].Size)

	reader, err := idx.Open(source, idx.Entries[0])
	require.NoError(t, err)
	plaintext, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, "Hello World!!", string(plaintext))
}

func TestReadIndexA21TwoEntriesOrderAndSizes(t *testing.T) {
	data := buildEntry64Archive(t, []testEntrySpec{
		{name: "a.bin", fileKey: bytes.Repeat([]byte{0x11}, 20), data: bytes.Repeat([]byte{0xAA}, 5)},
		{name: "b.bin", fileKey: bytes.Repeat([]byte{0x22}, 20), data: bytes.Repeat([]byte{0xBB}, 9)},
	})

	source := bytes.NewReader(data)
	idx, err := ReadIndex(source, gustcommon.A21, nil)
	require.NoError(t, err)
	require.Len(t, idx.Entries, 2)
	require.Equal(t, "a.bin", idx.Entries[0].Name)
	require.Equal(t, "b.bin", idx.Entries[1].Name)

	var totalSize uint32
	for _, e := range idx.Entries {
		totalSize += e.Size
	}
	require.EqualValues(t, 14, totalSize)

	for i, e := range idx.Entries {
		r, err := idx.Open(source, e)
		require.NoError(t, err)
		plain, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Len(t, plain, int(e.Size))
		if i == 0 {
			require.Equal(t, bytes.Repeat([]byte{0xAA}, 5), plain)
		} else {
			require.Equal(t, bytes.Repeat([]byte{0xBB}, 9), plain)
		}
	}
}

func TestReadIndexEmptyArchive(t *testing.T) {
	data := buildEntry64Archive(t, nil)
	idx, err := ReadIndex(bytes.NewReader(data), gustcommon.A21, nil)
	require.NoError(t, err)
	require.Empty(t, idx.Entries)
}
