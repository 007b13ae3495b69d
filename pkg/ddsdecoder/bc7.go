package ddsdecoder

import (
	"encoding/binary"
	"math/bits"
)

// rawColor holds four dequantized component values in R,G,B,A order before
// conversion to Color4. BC7's endpoint math is most naturally expressed as
// plain component arithmetic rather than through Color4's named fields.
type rawColor [4]uint8

func (c rawColor) toColor4() Color4 {
	return Color4{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// decodeBC7Image decodes a BC7 encoded buffer into a tightly-packed RGBA8
// image. Unlike BC1 and BC3, individual BC7 blocks can fail to decode (an
// unrecognized or unimplemented mode byte), so assembly must propagate that
// error instead of assuming every chunk succeeds.
func decodeBC7Image(data []byte, width, height int) ([]byte, error) {
	return assembleImageErr(width, height, func(chunkIndex int) (block, error) {
		return decodeBC7Block(data[chunkIndex*16 : chunkIndex*16+16])
	})
}

// decodeBC7Block decodes one 16-byte BC7 block. The mode is the position of
// the lowest set bit in byte 0; modes 0 and 2 are recognized but not
// implemented, and a byte 0 of 0x00 carries no mode bit at all.
func decodeBC7Block(data []byte) (block, error) {
	mode := bits.TrailingZeros8(data[0])

	switch mode {
	case 0, 2:
		return block{}, &UnimplementedBlockModeError{Mode: uint8(mode)}
	case 1, 3, 7:
		return decodeMode137(data, uint8(mode)), nil
	case 4, 5:
		return decodeMode45(data, uint8(mode)), nil
	case 6:
		return decodeMode6(data), nil
	default:
		return block{}, &InvalidBlockModeError{Raw: data[0]}
	}
}

// decodeMode137 decodes modes 1, 3, and 7: all three partition the block's 16
// pixels into two subsets (via partition2) and store 4 endpoints with p-bits:
// one per endpoint for modes 3 and 7, one per endpoint pair for mode 1.
func decodeMode137(data []byte, mode uint8) block {
	const numEndpoints = 4

	comps := 3
	if mode == 7 {
		comps = 4
	}
	weightBits := 2
	if mode == 1 {
		weightBits = 3
	}
	var endpointBits int
	switch mode {
	case 1:
		endpointBits = 6
	case 3:
		endpointBits = 7
	case 7:
		endpointBits = 5
	}
	pbitsCount := 4
	sharedPbits := mode == 1
	if sharedPbits {
		pbitsCount = 2
	}
	weightVals := 1 << weightBits

	bitOffset := 0
	readBits(data, &bitOffset, int(mode)+1)

	part := int(readBits(data, &bitOffset, 6))

	var endpoints [numEndpoints]rawColor
	for c := 0; c < comps; c++ {
		for e := 0; e < numEndpoints; e++ {
			endpoints[e][c] = uint8(readBits(data, &bitOffset, endpointBits))
		}
	}

	var pbits [4]int
	for p := 0; p < pbitsCount; p++ {
		pbits[p] = int(readBits(data, &bitOffset, 1))
	}

	var weights [16]int
	for i := 0; i < 16; i++ {
		bitsN := weightBits
		if i == 0 || uint8(i) == anchorIndexSecondSubset[part] {
			bitsN = weightBits - 1
		}
		weights[i] = int(readBits(data, &bitOffset, bitsN))
	}

	for e := 0; e < numEndpoints; e++ {
		for c := 0; c < 4; c++ {
			if c == comps {
				endpoints[e][c] = 255
				continue
			}
			pIdx := e
			if sharedPbits {
				pIdx = e >> 1
			}
			endpoints[e][c] = bc7DequantWithPbit(endpoints[e][c], pbits[pIdx], endpointBits)
		}
	}

	var blockColors [2][8]rawColor
	for s := 0; s < 2; s++ {
		for i := 0; i < weightVals; i++ {
			for c := 0; c < comps; c++ {
				blockColors[s][i][c] = bc7Interp(endpoints[s*2][c], endpoints[s*2+1][c], i, weightBits)
			}
			if comps == 3 {
				blockColors[s][i][3] = 255
			}
		}
	}

	if bitOffset != 128 {
		panic("bc7: mode 1/3/7 block did not consume exactly 128 bits")
	}

	var ret block
	for i := 0; i < 16; i++ {
		x, y := i&3, i>>2
		subset := partition2[part*16+i]
		ret[y][x] = blockColors[subset][weights[i]].toColor4()
	}
	return ret
}

// decodeMode45 decodes modes 4 and 5: single-subset, two endpoints, with
// independent color/alpha index maps and an optional component rotation.
func decodeMode45(data []byte, mode uint8) block {
	colorEndpointBits := 5
	alphaEndpointBits := 6
	if mode == 5 {
		colorEndpointBits = 7
		alphaEndpointBits = 8
	}

	bitOffset := 0
	readBits(data, &bitOffset, int(mode)+1)

	compRot := int(readBits(data, &bitOffset, 2))

	indexMode := 0
	if mode == 4 {
		indexMode = int(readBits(data, &bitOffset, 1))
	}

	var endpoints [2]rawColor
	for c := 0; c < 4; c++ {
		bitsN := colorEndpointBits
		if c == 3 {
			bitsN = alphaEndpointBits
		}
		for e := 0; e < 2; e++ {
			endpoints[e][c] = uint8(readBits(data, &bitOffset, bitsN))
		}
	}

	weightBits := [2]int{2, 2}
	if mode == 4 {
		if indexMode == 1 {
			weightBits[0] = 3
		}
		if indexMode == 0 {
			weightBits[1] = 3
		}
	}

	var weights [2][16]uint8
	for i := 0; i < 16; i++ {
		b := weightBits[indexMode]
		if i == 0 {
			b--
		}
		weights[indexMode][i] = uint8(readBits(data, &bitOffset, b))
	}
	for i := 0; i < 16; i++ {
		b := weightBits[1-indexMode]
		if i == 0 {
			b--
		}
		weights[1-indexMode][i] = uint8(readBits(data, &bitOffset, b))
	}

	for e := 0; e < 2; e++ {
		for c := 0; c < 4; c++ {
			bitsN := colorEndpointBits
			if c == 3 {
				bitsN = alphaEndpointBits
			}
			endpoints[e][c] = bc7Dequant(endpoints[e][c], bitsN)
		}
	}

	var blockColors [8]rawColor
	for i := 0; i < 1<<weightBits[0]; i++ {
		for c := 0; c < 3; c++ {
			blockColors[i][c] = bc7Interp(endpoints[0][c], endpoints[1][c], i, weightBits[0])
		}
	}
	for i := 0; i < 1<<weightBits[1]; i++ {
		blockColors[i][3] = bc7Interp(endpoints[0][3], endpoints[1][3], i, weightBits[1])
	}

	if bitOffset != 128 {
		panic("bc7: mode 4/5 block did not consume exactly 128 bits")
	}

	var ret block
	for i := 0; i < 16; i++ {
		x, y := i&3, i>>2

		rc := blockColors[weights[0][i]]
		rc[3] = blockColors[weights[1][i]][3]
		if compRot >= 1 {
			rc[3], rc[compRot-1] = rc[compRot-1], rc[3]
		}
		ret[y][x] = rc.toColor4()
	}
	return ret
}

// decodeMode6 decodes mode 6: single subset, full 7-bit color + alpha
// precision with one shared p-bit per endpoint, 4-bit weights throughout.
func decodeMode6(data []byte) block {
	dataLo := binary.LittleEndian.Uint64(data[0:8])
	dataHi := binary.LittleEndian.Uint64(data[8:16])

	getLo := func(bitIdx, bitLen uint) uint64 { return dataLo >> bitIdx & ((1 << bitLen) - 1) }
	getHi := func(bitIdx, bitLen uint) uint64 { return dataHi >> bitIdx & ((1 << bitLen) - 1) }

	r0 := (getLo(7, 7) << 1) | getLo(63, 1)
	g0 := (getLo(7*3, 7) << 1) | getLo(63, 1)
	b0 := (getLo(7*5, 7) << 1) | getLo(63, 1)
	a0 := (getLo(7*7, 7) << 1) | getLo(63, 1)

	r1 := (getLo(7*2, 7) << 1) | getHi(0, 1)
	g1 := (getLo(7*4, 7) << 1) | getHi(0, 1)
	b1 := (getLo(7*6, 7) << 1) | getHi(0, 1)
	a1 := (getLo(7*8, 7) << 1) | getHi(0, 1)

	var vals [16]Color4
	for i := 0; i < 16; i++ {
		w := uint64(weights4[i])
		iw := 64 - w
		vals[i] = Color4{
			R: uint8((r0*iw + r1*w + 32) >> 6),
			G: uint8((g0*iw + g1*w + 32) >> 6),
			B: uint8((b0*iw + b1*w + 32) >> 6),
			A: uint8((a0*iw + a1*w + 32) >> 6),
		}
	}

	idx := func(bitIdx, bitLen uint) int { return int(getHi(bitIdx, bitLen)) }

	var ret block
	ret[0][0] = vals[idx(1, 3)]
	ret[0][1] = vals[idx(4, 4)]
	ret[0][2] = vals[idx(4*2, 4)]
	ret[0][3] = vals[idx(4*3, 4)]
	ret[1][0] = vals[idx(4*4, 4)]
	ret[1][1] = vals[idx(4*5, 4)]
	ret[1][2] = vals[idx(4*6, 4)]
	ret[1][3] = vals[idx(4*7, 4)]
	ret[2][0] = vals[idx(4*8, 4)]
	ret[2][1] = vals[idx(4*9, 4)]
	ret[2][2] = vals[idx(4*10, 4)]
	ret[2][3] = vals[idx(4*11, 4)]
	ret[3][0] = vals[idx(4*12, 4)]
	ret[3][1] = vals[idx(4*13, 4)]
	ret[3][2] = vals[idx(4*14, 4)]
	ret[3][3] = vals[idx(4*15, 4)]

	return ret
}

// bc7Dequant expands a valBits-wide component value to full 8-bit range by
// left-shifting into place and replicating the high bits into the low bits.
func bc7Dequant(val uint8, valBits int) uint8 {
	v := int(val) << (8 - valBits)
	v |= v >> valBits
	return uint8(v)
}

// bc7DequantWithPbit is bc7Dequant for endpoints that carry one extra shared
// precision bit (the p-bit) appended below the stored value.
func bc7DequantWithPbit(val uint8, pbit int, valBits int) uint8 {
	totalBits := valBits + 1
	v := (int(val) << 1) | pbit
	v <<= 8 - totalBits
	v |= v >> totalBits
	return uint8(v)
}

func bc7Interp2(l, h uint8, w int) uint8 {
	return uint8((int(l)*(64-int(weights2[w])) + int(h)*int(weights2[w]) + 32) >> 6)
}

func bc7Interp3(l, h uint8, w int) uint8 {
	return uint8((int(l)*(64-int(weights3[w])) + int(h)*int(weights3[w]) + 32) >> 6)
}

func bc7Interp4(l, h uint8, w int) uint8 {
	return uint8((int(l)*(64-int(weights4[w])) + int(h)*int(weights4[w]) + 32) >> 6)
}

// bc7Interp dispatches to the weight table matching bitsN component-index
// bits (2, 3, or 4).
func bc7Interp(l, h uint8, w int, bitsN int) uint8 {
	switch bitsN {
	case 2:
		return bc7Interp2(l, h, w)
	case 3:
		return bc7Interp3(l, h, w)
	case 4:
		return bc7Interp4(l, h, w)
	default:
		panic("bc7: interpolation requested with unsupported index width")
	}
}
