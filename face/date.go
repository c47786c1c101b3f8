package face

import (
	"strconv"

	"watchface/trig"
)

const (
	// datePad keeps the date clear of the "3" digit.
	datePad = 16

	// dateBoxPad is the gap between the date text and its frame.
	dateBoxPad    = 2
	dateBoxCorner = 2
)

// DateWidget is the day-of-month label near 3 o'clock.
type DateWidget struct {
	Label string
	Pos   Point
	Text  Rect
	Box   Rect
}

// DateWidget positions the date for day on g. It goes through the same
// projection as the hour digits, inset past them by datePad.
func (f *Face) DateWidget(g Geometry, day int) DateWidget {
	inset := f.style.MajorLength + f.style.DigitOffset + datePad
	pos := f.shape.Project(g, trig.FromDegrees(90), inset)
	label := strconv.Itoa(day)
	text := f.centeredText(label, f.dateFont, pos)
	return DateWidget{
		Label: label,
		Pos:   pos,
		Text:  text,
		Box: Rect{
			X: text.X - dateBoxPad,
			Y: text.Y - dateBoxPad,
			W: text.W + 2*dateBoxPad,
			H: text.H + 2*dateBoxPad,
		},
	}
}
