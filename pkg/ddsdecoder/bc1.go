package ddsdecoder

import "encoding/binary"

// decodeBC1Image decodes a BC1 (DXT1) encoded buffer into a tightly-packed
// RGBA8 image.
func decodeBC1Image(data []byte, width, height int) []byte {
	return assembleImage(width, height, func(chunkIndex int) block {
		return decodeBC1Block(data[chunkIndex*8 : chunkIndex*8+8])
	})
}

// decodeBC1Block decodes one 8-byte BC1 block: two RGB565 endpoints and a
// 2bpp index map. When c0 > c1 all four colors are opaque; otherwise index 3
// is fully transparent and index 2 is the midpoint of the two endpoints.
func decodeBC1Block(b []byte) block {
	c0raw := binary.LittleEndian.Uint16(b[0:2])
	c1raw := binary.LittleEndian.Uint16(b[2:4])
	indexBits := binary.LittleEndian.Uint32(b[4:8])

	c0 := unpackRGB565(c0raw)
	c1 := unpackRGB565(c1raw)

	var palette [4]Color4
	palette[0] = c0
	palette[1] = c1
	if c0raw > c1raw {
		palette[2] = interpOpaque2(c0, c1)
		palette[3] = interpOpaque3(c0, c1)
	} else {
		palette[2] = interpTransparent2(c0, c1)
		palette[3] = interpTransparent3(c0, c1)
	}

	var out block
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			shift := uint((y*4 + x) * 2)
			idx := (indexBits >> shift) & 0b11
			out[y][x] = palette[idx]
		}
	}
	return out
}
