package gustpak

import "io"

// Open returns a seekable, plaintext reader over entry's payload within
// source. It seeks source to the entry's absolute data offset, then layers a
// XorReader on top of a FencedReader bounded to entry.Size — the fence
// clips ciphertext first, and the XOR layer derives its keystream index
// from the position the fence reports, which is relative to the fence's
// start: the keystream begins at key index 0 on the entry's first byte and
// stays aligned to that origin across seeks.
func (idx *Index) Open(source io.ReadSeeker, entry Entry) (io.ReadSeeker, error) {
	xorKey := deriveEffectiveKey(idx.generation.ArchiveKey(), entry.FileKey)

	absoluteOffset := int64(idx.DataStart) + int64(entry.DataOffset)
	if _, err := source.Seek(absoluteOffset, io.SeekStart); err != nil {
		return nil, err
	}

	fenced, err := TakeFence(source, int64(entry.Size))
	if err != nil {
		return nil, err
	}

	return NewXorReader(fenced, xorKey)
}
