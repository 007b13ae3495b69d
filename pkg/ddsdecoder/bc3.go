package ddsdecoder

import "encoding/binary"

// decodeBC3Image decodes a BC3 (DXT5) encoded buffer into a tightly-packed
// RGBA8 image.
func decodeBC3Image(data []byte, width, height int) []byte {
	return assembleImage(width, height, func(chunkIndex int) block {
		return decodeBC3Block(data[chunkIndex*16 : chunkIndex*16+16])
	})
}

// decodeBC3Block decodes one 16-byte BC3 block: an 8-byte alpha sub-block
// (two 8-bit endpoints plus a 48-bit 3bpp index map) followed by an 8-byte
// color sub-block, which is always decoded via BC1's opaque branch.
func decodeBC3Block(b []byte) block {
	alpha0 := b[0]
	alpha1 := b[1]

	var bitmapBytes [8]byte
	copy(bitmapBytes[:6], b[2:8])
	alphaBitmap := binary.LittleEndian.Uint64(bitmapBytes[:])

	var alphaLadder [8]uint8
	if alpha0 > alpha1 {
		a0, a1 := int(alpha0), int(alpha1)
		alphaLadder = [8]uint8{
			alpha0, alpha1,
			uint8((6*a0 + 1*a1 + 3) / 7),
			uint8((5*a0 + 2*a1 + 3) / 7),
			uint8((4*a0 + 3*a1 + 3) / 7),
			uint8((3*a0 + 4*a1 + 3) / 7),
			uint8((2*a0 + 5*a1 + 3) / 7),
			uint8((1*a0 + 6*a1 + 3) / 7),
		}
	} else {
		a0, a1 := int(alpha0), int(alpha1)
		alphaLadder = [8]uint8{
			alpha0, alpha1,
			uint8((4*a0 + 1*a1 + 2) / 5),
			uint8((3*a0 + 2*a1 + 2) / 5),
			uint8((2*a0 + 3*a1 + 2) / 5),
			uint8((1*a0 + 4*a1 + 2) / 5),
			0,
			255,
		}
	}

	color0 := unpackRGB565(binary.LittleEndian.Uint16(b[8:10]))
	color1 := unpackRGB565(binary.LittleEndian.Uint16(b[10:12]))
	colorBitmap := binary.LittleEndian.Uint32(b[12:16])

	var out block
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixelIndex := uint(x + y*4)

			alphaBits := (alphaBitmap >> (pixelIndex * 3)) & 0b111
			alpha := alphaLadder[alphaBits]

			c0 := withAlpha(color0, alpha)
			c1 := withAlpha(color1, alpha)

			colorBits := (colorBitmap >> (pixelIndex * 2)) & 0b11
			switch colorBits {
			case 0b00:
				out[y][x] = c0
			case 0b01:
				out[y][x] = c1
			case 0b10:
				out[y][x] = interpOpaque2(c0, c1)
			case 0b11:
				out[y][x] = interpOpaque3(c0, c1)
			}
		}
	}
	return out
}
