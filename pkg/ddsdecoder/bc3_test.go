package ddsdecoder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBC3BlockSolidRedWithAlphaLadder(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 255 // alpha0
	b[1] = 0   // alpha1, alpha0 > alpha1 selects the 7-step ladder

	// alphaBitmap left at zero: every pixel selects ladder index 0 (alpha0).

	color0 := packRGB565(31, 0, 0) // red
	binary.LittleEndian.PutUint16(b[8:10], color0)
	binary.LittleEndian.PutUint16(b[10:12], color0)
	binary.LittleEndian.PutUint32(b[12:16], 0) // every pixel selects color index 0

	out := decodeBC3Block(b)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint8(248), out[y][x].R)
			assert.Equal(t, uint8(0), out[y][x].G)
			assert.Equal(t, uint8(0), out[y][x].B)
			assert.Equal(t, uint8(255), out[y][x].A)
		}
	}
}

func TestDecodeBC3BlockAlphaLadderSteps(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 255
	b[1] = 0

	// pixel (0,0) selects alpha index 2, the first interpolated 7-step rung
	alphaBitmap := uint64(2)
	var bitmapBytes [8]byte
	binary.LittleEndian.PutUint64(bitmapBytes[:], alphaBitmap)
	copy(b[2:8], bitmapBytes[:6])

	out := decodeBC3Block(b)
	expected := uint8((6*255 + 1*0 + 3) / 7)
	assert.Equal(t, expected, out[0][0].A)
}

func TestDecodeBC3BlockFiveStepLadderBounds(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 10
	b[1] = 200 // alpha0 <= alpha1 selects the 5-step ladder with explicit 0/255

	alphaBitmap := uint64(6) | uint64(7)<<3 // pixel0 -> index6 (0), pixel1 -> index7 (255)
	var bitmapBytes [8]byte
	binary.LittleEndian.PutUint64(bitmapBytes[:], alphaBitmap)
	copy(b[2:8], bitmapBytes[:6])

	out := decodeBC3Block(b)
	assert.Equal(t, uint8(0), out[0][0].A)
	assert.Equal(t, uint8(255), out[0][1].A)
}

func TestDecodeBC3ImageTrimsPadding(t *testing.T) {
	data := make([]byte, 16)
	out := decodeBC3Image(data, 3, 3)
	assert.Len(t, out, 3*3*4)
}
