package ddsdecoder

// Color4 is a single RGBA8 pixel.
type Color4 struct {
	R, G, B, A uint8
}

// block is a decoded 4x4 tile of pixels, row-major.
type block [4][4]Color4

func unpackRGB565(c uint16) Color4 {
	return Color4{
		R: uint8((c>>11)&0b1_1111) << 3,
		G: uint8((c>>5)&0b11_1111) << 2,
		B: uint8(c&0b1_1111) << 3,
		A: 255,
	}
}

func withAlpha(c Color4, a uint8) Color4 {
	c.A = a
	return c
}

// interpOpaque2 computes (2*c0 + c1 + 1) / 3 component-wise.
func interpOpaque2(c0, c1 Color4) Color4 {
	return Color4{
		R: uint8((2*int(c0.R) + int(c1.R) + 1) / 3),
		G: uint8((2*int(c0.G) + int(c1.G) + 1) / 3),
		B: uint8((2*int(c0.B) + int(c1.B) + 1) / 3),
		A: uint8((2*int(c0.A) + int(c1.A) + 1) / 3),
	}
}

// interpOpaque3 computes (c0 + 2*c1 + 1) / 3 component-wise.
func interpOpaque3(c0, c1 Color4) Color4 {
	return Color4{
		R: uint8((int(c0.R) + 2*int(c1.R) + 1) / 3),
		G: uint8((int(c0.G) + 2*int(c1.G) + 1) / 3),
		B: uint8((int(c0.B) + 2*int(c1.B) + 1) / 3),
		A: uint8((int(c0.A) + 2*int(c1.A) + 1) / 3),
	}
}

// interpTransparent2 computes (c0 + c1) / 2 component-wise.
func interpTransparent2(c0, c1 Color4) Color4 {
	return Color4{
		R: uint8((int(c0.R) + int(c1.R)) / 2),
		G: uint8((int(c0.G) + int(c1.G)) / 2),
		B: uint8((int(c0.B) + int(c1.B)) / 2),
		A: uint8((int(c0.A) + int(c1.A)) / 2),
	}
}

// interpTransparent3 is index 3 of BC1's 3-color mode: fully transparent black.
func interpTransparent3(Color4, Color4) Color4 {
	return Color4{}
}
