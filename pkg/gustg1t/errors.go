package gustg1t

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeaderMagic      = errors.New("invalid g1t header magic")
	ErrVersionParse            = errors.New("failed to parse g1t version")
	ErrUnknownPlatform         = errors.New("unknown g1t platform")
	ErrInvalidExtraSize        = errors.New("invalid g1t extra size")
	ErrInvalidExtendedDataSize = errors.New("invalid g1t extended data size")
	ErrNoMipmaps               = errors.New("texture declares zero mipmaps")
	ErrUnsupportedFormat       = errors.New("unsupported texture type code")
	ErrTooManyFrames           = errors.New("texture has more than one frame")
)

// InvalidTotalSizeError reports a mismatch between the header's declared
// total_size field and the actual stream length.
type InvalidTotalSizeError struct {
	Expected uint32
	Actual   uint32
}

func (e *InvalidTotalSizeError) Error() string {
	return fmt.Sprintf("g1t total size mismatch: expected %d, found %d", e.Expected, e.Actual)
}
