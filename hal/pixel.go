package hal

import (
	"image"
	"image/color"
)

// RGB565 packs an 8-bit-per-channel color.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBAt returns the pixel at x, y, or transparent black outside the buffer.
func RGBAt(fb Framebuffer, x, y int) color.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return color.RGBA{}
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return color.RGBA{}
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return color.RGBA{}
	}
	r, g, b := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// ToRGBA converts fb into dst, reallocating dst when the size differs.
func ToRGBA(fb Framebuffer, dst *image.RGBA) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	src := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return dst
			}
			r, g, b := rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}
