package face

import "tinygo.org/x/tinyfont"

// TextMeasurer reports the rendered size of a string.
type TextMeasurer interface {
	MeasureText(s string, font tinyfont.Fonter, bounds Rect) Size
}

// FontMeasurer measures text from tinyfont glyph metrics.
type FontMeasurer struct{}

func (FontMeasurer) MeasureText(s string, font tinyfont.Fonter, bounds Rect) Size {
	return MeasureText(s, font, bounds)
}

// MeasureText returns the advance width and ink height of s, clamped to
// bounds.
func MeasureText(s string, font tinyfont.Fonter, bounds Rect) Size {
	if font == nil || s == "" {
		return Size{}
	}
	_, w := tinyfont.LineWidth(font, s)
	asc, desc := TextExtent(font, s)
	sz := Size{W: int(w), H: asc + desc}
	if bounds.W > 0 && sz.W > bounds.W {
		sz.W = bounds.W
	}
	if bounds.H > 0 && sz.H > bounds.H {
		sz.H = bounds.H
	}
	return sz
}

// TextExtent returns how far the glyphs of s reach above and below the
// baseline.
func TextExtent(font tinyfont.Fonter, s string) (ascent, descent int) {
	for _, r := range s {
		info := font.GetGlyph(r).Info()
		top := -int(info.YOffset)
		bottom := int(info.Height) + int(info.YOffset)
		if top > ascent {
			ascent = top
		}
		if bottom > descent {
			descent = bottom
		}
	}
	return ascent, descent
}
