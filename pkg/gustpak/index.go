// Package gustpak parses PAK archive indices and exposes seekable,
// XOR-decrypting readers over each entry's payload.
package gustpak

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/holly-hacker/gust-archive/pkg/gustcommon"
)

// Index is the parsed result of reading a PAK archive's header and entry
// table. It owns its entry metadata; it does not hold the underlying byte
// source, so it may be read concurrently from multiple goroutines once
// constructed.
type Index struct {
	header     Header
	Entries    []Entry
	DataStart  uint64
	generation gustcommon.Generation
}

// ReadIndex reads a PAK header and entry table from source, selecting the
// entry shape and optional archive key from generation. The source's cursor
// must be at the start of the archive; on return it sits at the payload
// origin (Index.DataStart).
func ReadIndex(source io.ReadSeeker, generation gustcommon.Generation, logger hclog.Logger) (*Index, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	logger.Debug("reading pak index", "generation", generation.String())

	header, err := readHeader(source)
	if err != nil {
		return nil, err
	}
	logger.Trace("read pak header", "file_count", header.FileCount, "flags", header.Flags)

	archiveKey := generation.ArchiveKey()
	shape := generation.EntryShape()

	entries := make([]Entry, 0, header.FileCount)
	for i := uint32(0); i < header.FileCount; i++ {
		var entry Entry
		var err error
		switch shape {
		case gustcommon.ShapeEntry32:
			entry, err = readEntry32(source, logger)
		case gustcommon.ShapeEntry64:
			entry, err = readEntry64(source, logger)
		case gustcommon.ShapeEntry64Ext:
			entry, err = readEntry64Ext(source, archiveKey, logger)
		}
		if err != nil {
			return nil, err
		}
		logger.Trace("read pak entry", "name", entry.Name, "size", entry.Size)
		entries = append(entries, entry)
	}

	dataStart, err := source.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	if len(entries) != int(header.FileCount) {
		logger.Warn("header claims more entries than were read", "declared", header.FileCount, "read", len(entries))
	}

	return &Index{
		header:     header,
		Entries:    entries,
		DataStart:  uint64(dataStart),
		generation: generation,
	}, nil
}
