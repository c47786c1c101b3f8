package face

import (
	"image/color"

	"watchface/trig"
)

const (
	degreesPerHour       = 30
	degreesPerMinute     = 6
	degreesPerSecond     = 6
	hourDegreesPerMinute = 0.5
	centerDotRadius      = 5
)

// Hand describes one clock hand.
type Hand struct {
	LengthRatio float32
	Width       int
	Color       color.RGBA
}

var (
	HourHand   = Hand{LengthRatio: 0.5, Width: 5, Color: White}
	MinuteHand = Hand{LengthRatio: 0.75, Width: 3, Color: White}
	SecondHand = Hand{LengthRatio: 0.85, Width: 1, Color: Red}
)

// Length returns the hand length on a face of radius r.
func (h Hand) Length(r int) int {
	return int(float32(r) * h.LengthRatio)
}

// Endpoint returns the tip of the hand at deg degrees. Hands always
// project onto a circle, whatever the face shape.
func (h Hand) Endpoint(g Geometry, deg float64) Point {
	return ProjectCircle(g.Center, trig.FromDegrees(deg), h.Length(g.Radius))
}

// HandAngles are the hand directions in degrees clockwise from 12.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesAt returns the hand angles for ts. The hour hand advances with
// the minutes so it never jumps on the hour.
func AnglesAt(ts Timestamp) HandAngles {
	return HandAngles{
		Hour:   float64(ts.Hour%12)*degreesPerHour + float64(ts.Minute)*hourDegreesPerMinute,
		Minute: float64(ts.Minute * degreesPerMinute),
		Second: float64(ts.Second * degreesPerSecond),
	}
}

// HandTips holds the three hand endpoints of a frame.
type HandTips struct {
	Hour, Minute, Second Point
}

// Hands returns the hand endpoints for ts on g.
func (f *Face) Hands(g Geometry, ts Timestamp) HandTips {
	a := AnglesAt(ts)
	return HandTips{
		Hour:   HourHand.Endpoint(g, a.Hour),
		Minute: MinuteHand.Endpoint(g, a.Minute),
		Second: SecondHand.Endpoint(g, a.Second),
	}
}
