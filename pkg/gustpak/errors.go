package gustpak

import "errors"

// Header-level parse errors. All are fatal: the index parser never returns
// a partially constructed Index alongside an error.
var (
	ErrInvalidHeaderVersion = errors.New("invalid pak header version")
	ErrInvalidHeaderSize    = errors.New("invalid pak header size")
	ErrTooManyFiles         = errors.New("too many files declared in pak header")
)

// Entry-level parse errors.
var (
	ErrMissingNullTerminator = errors.New("file name buffer has no null terminator")
)

// Reader errors, surfaced by XorReader and FencedReader.
var (
	ErrKeyTooLong     = errors.New("xor key longer than 32 bytes")
	ErrSeekOutOfBounds = errors.New("seek out of bounds of fenced window")
)
