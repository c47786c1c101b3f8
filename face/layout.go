package face

import (
	"errors"
	"strconv"

	"watchface/trig"
)

var ErrMarkerCount = errors.New("marker count must be 12 or 60")

// Style fixes the tick layout of a face.
type Style struct {
	Count         int // markers around the face
	MajorInterval int
	MajorLength   int
	MinorLength   int
	MajorWidth    int
	MinorWidth    int

	// DigitOffset moves hour digits inward past the major marker.
	DigitOffset int
}

var (
	// HourStyle has one marker per hour; 12, 3, 6 and 9 are major.
	HourStyle = Style{
		Count:         12,
		MajorInterval: 3,
		MajorLength:   15,
		MinorLength:   8,
		MajorWidth:    3,
		MinorWidth:    1,
		DigitOffset:   10,
	}
	// MinuteStyle has one marker per minute; every hour is major.
	MinuteStyle = Style{
		Count:         60,
		MajorInterval: 5,
		MajorLength:   10,
		MinorLength:   4,
		MajorWidth:    2,
		MinorWidth:    1,
		DigitOffset:   10,
	}
)

// StyleFor returns the style with count markers.
func StyleFor(count int) (Style, error) {
	switch count {
	case 12:
		return HourStyle, nil
	case 60:
		return MinuteStyle, nil
	default:
		return Style{}, ErrMarkerCount
	}
}

// IsMajor reports whether marker i sits on a major position.
func (s Style) IsMajor(i int) bool {
	return i%s.MajorInterval == 0
}

// DisplayHour maps a marker index to the hour printed beside it, with
// index 0 shown as 12.
func (s Style) DisplayHour(i int) int {
	h := i * 12 / s.Count
	if h == 0 {
		return 12
	}
	return h
}

// Angle returns the angle of marker i.
func (s Style) Angle(i int) trig.Angle {
	return trig.FromDegrees(float64(i) * 360 / float64(s.Count))
}

// Marker is one tick with its endpoints for the current frame.
type Marker struct {
	Index int
	Major bool
	Width int
	Outer Point
	Inner Point
}

// Digit is an hour label centered on Pos.
type Digit struct {
	Index int
	Label string
	Pos   Point
	Rect  Rect
}

// Markers lays out every tick of the face for g.
func (f *Face) Markers(g Geometry) []Marker {
	s := f.style
	out := make([]Marker, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		major := s.IsMajor(i)
		length, width := s.MinorLength, s.MinorWidth
		if major {
			length, width = s.MajorLength, s.MajorWidth
		}
		a := s.Angle(i)
		out = append(out, Marker{
			Index: i,
			Major: major,
			Width: width,
			Outer: f.shape.Project(g, a, 0),
			Inner: f.shape.Project(g, a, length),
		})
	}
	return out
}

// Digits lays out the hour labels at the major markers.
func (f *Face) Digits(g Geometry) []Digit {
	s := f.style
	inset := s.MajorLength + s.DigitOffset
	var out []Digit
	for i := 0; i < s.Count; i++ {
		if !s.IsMajor(i) {
			continue
		}
		label := strconv.Itoa(s.DisplayHour(i))
		pos := f.shape.Project(g, s.Angle(i), inset)
		out = append(out, Digit{
			Index: i,
			Label: label,
			Pos:   pos,
			Rect:  f.centeredText(label, f.digitFont, pos),
		})
	}
	return out
}
