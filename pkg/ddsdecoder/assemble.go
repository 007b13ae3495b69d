package ddsdecoder

// assembleImage tiles decoded 4x4 blocks (produced by decodeBlock, called
// once per 16-byte / 8-byte source chunk depending on format) into a
// block-aligned intermediate RGBA8 buffer, then trims it row-by-row down to
// the exact width*height buffer the caller asked for. This trimming step
// is shared across BC1/BC3/BC7 rather than duplicated per decoder, since
// none of them actually differ in how padding is dropped.
func assembleImage(width, height int, decodeBlock func(chunkIndex int) block) []byte {
	out, _ := assembleImageErr(width, height, func(chunkIndex int) (block, error) {
		return decodeBlock(chunkIndex), nil
	})
	return out
}

// assembleImageErr is assembleImage's counterpart for decoders whose
// per-block decode step can itself fail, such as BC7's block mode dispatch.
func assembleImageErr(width, height int, decodeBlock func(chunkIndex int) (block, error)) ([]byte, error) {
	blocksX := max(1, (width+3)/4)
	blocksY := max(1, (height+3)/4)
	blockCount := blocksX * blocksY

	intermediate := make([]Color4, blockCount*16)
	for chunkIndex := 0; chunkIndex < blockCount; chunkIndex++ {
		b, err := decodeBlock(chunkIndex)
		if err != nil {
			return nil, err
		}

		chunkX := (chunkIndex % blocksX) * 4
		chunkY := (chunkIndex / blocksX) * 4
		targetBase := chunkY*(blocksX*4) + chunkX

		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				intermediate[targetBase+y*(blocksX*4)+x] = b[y][x]
			}
		}
	}

	intermediateBytes := make([]byte, len(intermediate)*4)
	for i, c := range intermediate {
		intermediateBytes[i*4+0] = c.R
		intermediateBytes[i*4+1] = c.G
		intermediateBytes[i*4+2] = c.B
		intermediateBytes[i*4+3] = c.A
	}

	final := make([]byte, width*height*4)
	lineBytes := blocksX * 4 * 4
	for row := 0; row < height; row++ {
		srcStart := row * lineBytes
		dstStart := row * width * 4
		copy(final[dstStart:dstStart+width*4], intermediateBytes[srcStart:srcStart+width*4])
	}

	return final, nil
}
