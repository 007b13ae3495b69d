package gustpak

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/holly-hacker/gust-archive/pkg/gustcommon"
)

const nameBufferSize = 128

// Entry is a single PAK file record. Its shape on disk varies by game
// generation (Entry32 / Entry64 / Entry64Ext, see gustcommon.EntryShape),
// but once parsed every variant projects onto this same flat struct —
// deliberately not a tagged interface, since nothing downstream needs
// dynamic dispatch over the three shapes.
type Entry struct {
	Name       string
	Size       uint32
	FileKey    []byte
	Extra      uint32 // only meaningful for ShapeEntry64Ext; preserved but otherwise unused
	DataOffset uint64
	Flags      uint64
	Shape      gustcommon.EntryShape
}

func readEntry32(r io.Reader, logger hclog.Logger) (Entry, error) {
	nameBuf := make([]byte, nameBufferSize)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return Entry{}, err
	}

	rest := make([]byte, 4+20+4+4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return Entry{}, err
	}
	size := binary.LittleEndian.Uint32(rest[0:4])
	fileKey := append([]byte(nil), rest[4:24]...)
	dataOffset := binary.LittleEndian.Uint32(rest[24:28])
	flags := binary.LittleEndian.Uint32(rest[28:32])

	name, err := decryptName(nameBuf, nil, fileKey, logger)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:       name,
		Size:       size,
		FileKey:    fileKey,
		DataOffset: uint64(dataOffset),
		Flags:      uint64(flags),
		Shape:      gustcommon.ShapeEntry32,
	}, nil
}

func readEntry64(r io.Reader, logger hclog.Logger) (Entry, error) {
	nameBuf := make([]byte, nameBufferSize)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return Entry{}, err
	}

	rest := make([]byte, 4+20+8+8)
	if _, err := io.ReadFull(r, rest); err != nil {
		return Entry{}, err
	}
	size := binary.LittleEndian.Uint32(rest[0:4])
	fileKey := append([]byte(nil), rest[4:24]...)
	dataOffset := binary.LittleEndian.Uint64(rest[24:32])
	flags := binary.LittleEndian.Uint64(rest[32:40])

	// only A23 and A24 carry an archive-wide key, and both use Entry64Ext;
	// games using this shape predate it, so there is never one to apply here.
	name, err := decryptName(nameBuf, nil, fileKey, logger)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:       name,
		Size:       size,
		FileKey:    fileKey,
		DataOffset: dataOffset,
		Flags:      flags,
		Shape:      gustcommon.ShapeEntry64,
	}, nil
}

func readEntry64Ext(r io.Reader, archiveKey []byte, logger hclog.Logger) (Entry, error) {
	nameBuf := make([]byte, nameBufferSize)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return Entry{}, err
	}

	rest := make([]byte, 4+32+4+8+8)
	if _, err := io.ReadFull(r, rest); err != nil {
		return Entry{}, err
	}
	size := binary.LittleEndian.Uint32(rest[0:4])
	fileKey := append([]byte(nil), rest[4:36]...)
	extra := binary.LittleEndian.Uint32(rest[36:40])
	dataOffset := binary.LittleEndian.Uint64(rest[40:48])
	flags := binary.LittleEndian.Uint64(rest[48:56])

	name, err := decryptName(nameBuf, archiveKey, fileKey, logger)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:       name,
		Size:       size,
		FileKey:    fileKey,
		Extra:      extra,
		DataOffset: dataOffset,
		Flags:      flags,
		Shape:      gustcommon.ShapeEntry64Ext,
	}, nil
}

// deriveEffectiveKey XOR-tiles archiveKey (or 32 zero bytes, if archiveKey is
// nil) with fileKey and truncates the result to fileKey's length. This is
// the effective keystream applied to both the entry's name and its payload.
func deriveEffectiveKey(archiveKey []byte, fileKey []byte) []byte {
	var tiled [32]byte
	copy(tiled[:], archiveKey)

	for i := range tiled {
		tiled[i] ^= fileKey[i%len(fileKey)]
	}

	effective := make([]byte, len(fileKey))
	copy(effective, tiled[:len(fileKey)])
	return effective
}

func decryptName(nameBuf []byte, archiveKey []byte, fileKey []byte, logger hclog.Logger) (string, error) {
	key := deriveEffectiveKey(archiveKey, fileKey)
	for i := range nameBuf {
		nameBuf[i] ^= key[i%len(key)]
	}

	nul := bytes.IndexByte(nameBuf, 0)
	if nul < 0 {
		return "", ErrMissingNullTerminator
	}
	name := nameBuf[:nul]

	if !utf8.Valid(name) && logger != nil {
		logger.Warn("file name is not valid ascii/utf-8", "raw", fmt.Sprintf("%x", name))
	}

	return string(name), nil
}
