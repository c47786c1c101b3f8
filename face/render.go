package face

// Render returns the commands for one frame in draw order: outline,
// markers, digits, date, hands, center dot. Hands come last so they sit
// on top.
func (f *Face) Render(g Geometry, ts Timestamp) []Command {
	b := &builder{cmds: make([]Command, 0, 4*f.style.Count+32)}

	f.shape.Outline(g, b)
	f.drawMarkers(g, b)
	f.drawDigits(g, b)
	if f.date {
		f.drawDate(g, ts.Day, b)
	}
	f.drawHands(g, ts, b)

	return b.cmds
}

// Frame renders ts on a width x height surface.
func (f *Face) Frame(width, height int, ts Timestamp) []Command {
	return f.Render(GeometryFor(width, height), ts)
}

func (f *Face) drawMarkers(g Geometry, b *builder) {
	b.strokeColor(White)
	width := -1
	for _, m := range f.Markers(g) {
		if m.Width != width {
			b.strokeWidth(m.Width)
			width = m.Width
		}
		b.line(m.Outer, m.Inner)
	}
}

func (f *Face) drawDigits(g Geometry, b *builder) {
	b.textColor(White)
	for _, d := range f.Digits(g) {
		b.text(d.Label, f.digitFont, d.Rect, AlignCenter)
	}
}

func (f *Face) drawDate(g Geometry, day int, b *builder) {
	w := f.DateWidget(g, day)
	b.strokeColor(White)
	b.strokeWidth(1)
	b.roundRect(w.Box, dateBoxCorner)
	b.textColor(White)
	b.text(w.Label, f.dateFont, w.Text, AlignCenter)
}

func (f *Face) drawHands(g Geometry, ts Timestamp, b *builder) {
	tips := f.Hands(g, ts)
	hand := func(h Hand, tip Point) {
		b.strokeWidth(h.Width)
		b.strokeColor(h.Color)
		b.line(g.Center, tip)
	}
	hand(HourHand, tips.Hour)
	hand(MinuteHand, tips.Minute)
	hand(SecondHand, tips.Second)

	b.fillColor(White)
	b.fillCircle(g.Center, centerDotRadius)
}
