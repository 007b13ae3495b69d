package ddsdecoder

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned by Decode for a Format with no registered
// block decoder.
var ErrUnsupportedFormat = errors.New("unsupported dds format")

// InvalidBlockModeError reports a BC7 block whose byte 0 has no set bit, so
// no mode prefix could be found at all.
type InvalidBlockModeError struct {
	Raw uint8
}

func (e *InvalidBlockModeError) Error() string {
	return fmt.Sprintf("invalid bc7 block mode byte: 0x%02x", e.Raw)
}

// UnimplementedBlockModeError reports a BC7 block using mode 0 or 2, which
// this decoder does not implement.
type UnimplementedBlockModeError struct {
	Mode uint8
}

func (e *UnimplementedBlockModeError) Error() string {
	return fmt.Sprintf("unimplemented bc7 block mode: %d", e.Mode)
}
