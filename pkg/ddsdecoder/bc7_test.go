package ddsdecoder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitWriter packs a 128-bit BC7 block LSB-first, mirroring how readBits
// reads it back.
type bitWriter struct {
	lo, hi uint64
}

func (w *bitWriter) set(bitIdx, length int, value uint64) {
	value &= (uint64(1) << length) - 1
	if bitIdx >= 64 {
		w.hi |= value << (bitIdx - 64)
	} else {
		w.lo |= value << bitIdx
	}
}

func (w *bitWriter) bytes() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], w.lo)
	binary.LittleEndian.PutUint64(buf[8:16], w.hi)
	return buf
}

func TestDecodeBC7BlockMode6EndpointsAndWeights(t *testing.T) {
	var w bitWriter
	w.set(0, 7, 1<<6) // mode marker: bit 6 set

	// endpoint 0: r=g=b field 0, a field 127, shared p-bit 0 => (0,0,0,254)
	w.set(7, 7, 0)
	w.set(7*3, 7, 0)
	w.set(7*5, 7, 0)
	w.set(7*7, 7, 127)
	w.set(63, 1, 0)

	// endpoint 1: r=g=b=a field 127, shared p-bit 1 => (255,255,255,255)
	w.set(7*2, 7, 127)
	w.set(7*4, 7, 127)
	w.set(7*6, 7, 127)
	w.set(7*8, 7, 127)
	w.set(64, 1, 1)

	// weight index i assigned to pixel i in row-major order; pixel 0 uses a
	// 3-bit short field (the implicit anchor), the rest use 4 bits.
	w.set(65, 3, 0)
	for i := 1; i < 16; i++ {
		w.set(64+1+3+4*(i-1), 4, uint64(i))
	}

	b, err := decodeBC7Block(w.bytes())
	require.NoError(t, err)

	assert.Equal(t, Color4{R: 0, G: 0, B: 0, A: 254}, b[0][0])
	assert.Equal(t, Color4{R: 255, G: 255, B: 255, A: 255}, b[3][3])

	weight := uint64(weights4[8])
	expected := uint8((0*(64-weight) + 255*weight + 32) >> 6)
	assert.Equal(t, expected, b[2][0].R)
	assert.Equal(t, expected, b[2][0].G)
	assert.Equal(t, expected, b[2][0].B)
}

func TestDecodeBC7BlockInvalidMode(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x00

	_, err := decodeBC7Block(data)
	var invalidErr *InvalidBlockModeError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, uint8(0x00), invalidErr.Raw)
}

func TestDecodeBC7BlockUnimplementedMode(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x01 // lowest set bit at position 0: mode 0

	_, err := decodeBC7Block(data)
	var unimplErr *UnimplementedBlockModeError
	require.ErrorAs(t, err, &unimplErr)
	assert.Equal(t, uint8(0), unimplErr.Mode)
}

func TestWeights4TableValueEight(t *testing.T) {
	assert.Equal(t, uint8(34), weights4[8])
}

func TestDecodeBC7ImageDimensionsAndTrim(t *testing.T) {
	var w bitWriter
	w.set(0, 7, 1<<6)
	// flat endpoints: both (128,128,128,128), pbits 0, so every pixel decodes
	// to the same color regardless of weight index.
	for _, bitIdx := range []int{7, 7 * 3, 7 * 5, 7 * 7} {
		w.set(bitIdx, 7, 64)
	}
	for _, bitIdx := range []int{7 * 2, 7 * 4, 7 * 6, 7 * 8} {
		w.set(bitIdx, 7, 64)
	}

	blockBytes := w.bytes()
	// a single 4x4 block covers an image with width/height under 4, which
	// should still trim down to exactly width*height*4 bytes.
	out, err := decodeBC7Image(blockBytes, 3, 2)
	require.NoError(t, err)
	assert.Len(t, out, 3*2*4)
}
