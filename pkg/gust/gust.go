// Package gust is the caller-facing convenience API over gustpak and
// gustg1t: opening archives by generation tag, and round-trip verification
// of the invariants each format parser guarantees.
package gust

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/holly-hacker/gust-archive/pkg/gustcommon"
	"github.com/holly-hacker/gust-archive/pkg/gustg1t"
	"github.com/holly-hacker/gust-archive/pkg/gustpak"
	"github.com/holly-hacker/gust-archive/pkg/logging"
)

// Re-exported error sentinels so callers need not import the sub-packages
// directly just to use errors.Is/errors.As against them.
var (
	ErrUnknownGeneration = gustcommon.ErrUnknownGeneration

	ErrInvalidHeaderVersion  = gustpak.ErrInvalidHeaderVersion
	ErrInvalidHeaderSize     = gustpak.ErrInvalidHeaderSize
	ErrTooManyFiles          = gustpak.ErrTooManyFiles
	ErrMissingNullTerminator = gustpak.ErrMissingNullTerminator

	ErrInvalidHeaderMagic = gustg1t.ErrInvalidHeaderMagic
	ErrUnknownPlatform    = gustg1t.ErrUnknownPlatform
)

// OpenPak parses a PAK archive's header and entry table. generation is a
// case-insensitive tag such as "A21" or "A24" (see gustcommon.ParseGeneration).
func OpenPak(source io.ReadSeeker, generation string) (*gustpak.Index, error) {
	gen, err := gustcommon.ParseGeneration(generation)
	if err != nil {
		return nil, err
	}
	return gustpak.ReadIndex(source, gen, loggerFromEnv("gust-pak"))
}

// OpenG1T parses a G1T texture container's header and texture table.
func OpenG1T(source io.ReadSeeker) (*gustg1t.Container, error) {
	return gustg1t.Parse(source, loggerFromEnv("gust-g1t"))
}

// VerifyPak extracts every entry in idx and checks that each one yields
// exactly its declared size with no short read. Per-entry I/O failures are
// collected and returned together rather than aborting the batch; a nil or
// empty result means every entry round-tripped cleanly.
func VerifyPak(source io.ReadSeeker, idx *gustpak.Index) []error {
	var errs []error
	for _, entry := range idx.Entries {
		r, err := idx.Open(source, entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
			continue
		}

		n, err := io.Copy(io.Discard, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
			continue
		}
		if uint32(n) != entry.Size {
			errs = append(errs, fmt.Errorf("%s: expected %d bytes, got %d", entry.Name, entry.Size, n))
		}
	}
	return errs
}

// VerifyG1T decodes every texture in c and checks that the resulting RGBA8
// buffer has exactly 4*width*height bytes. As with VerifyPak, failures are
// collected per texture rather than stopping at the first one.
func VerifyG1T(source io.ReadSeeker, c *gustg1t.Container) []error {
	var errs []error
	for i, tex := range c.Textures {
		buf, err := c.Decode(source, tex)
		if err != nil {
			errs = append(errs, fmt.Errorf("texture %d (0x%02x): %w", i, tex.TypeCode(), err))
			continue
		}
		want := 4 * int(tex.Width) * int(tex.Height)
		if len(buf) != want {
			errs = append(errs, fmt.Errorf("texture %d: expected %d decoded bytes, got %d", i, want, len(buf)))
		}
	}
	return errs
}

func loggerFromEnv(name string) hclog.Logger {
	return logging.NewLogger(name, logging.GetLogLevel(), nil)
}
