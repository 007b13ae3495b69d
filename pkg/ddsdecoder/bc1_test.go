package ddsdecoder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func packRGB565(r5, g6, b5 uint16) uint16 {
	return (r5 << 11) | (g6 << 5) | b5
}

func TestDecodeBC1BlockOpaqueBranch(t *testing.T) {
	c0 := packRGB565(31, 0, 0) // red, 0xF800
	c1 := packRGB565(0, 0, 31) // blue, 0x001F

	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], c0)
	binary.LittleEndian.PutUint16(b[2:4], c1)
	binary.LittleEndian.PutUint32(b[4:8], 0) // all pixels select index 0

	out := decodeBC1Block(b)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Color4{R: 248, G: 0, B: 0, A: 255}, out[y][x])
		}
	}
}

func TestDecodeBC1BlockTransparentBranch(t *testing.T) {
	c0 := packRGB565(0, 0, 31) // blue, c0 < c1 so the 3-color branch applies
	c1 := packRGB565(31, 0, 0) // red

	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], c0)
	binary.LittleEndian.PutUint16(b[2:4], c1)
	// index 3 for every pixel selects the transparent entry
	binary.LittleEndian.PutUint32(b[4:8], 0xFFFFFFFF)

	out := decodeBC1Block(b)
	assert.Equal(t, Color4{}, out[0][0])
}

func TestDecodeBC1ImageTrimsPadding(t *testing.T) {
	data := make([]byte, 8)
	out := decodeBC1Image(data, 3, 3)
	assert.Len(t, out, 3*3*4)
}
