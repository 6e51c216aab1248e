package diagram

// Style holds the presentation attributes layers give their shapes.
type Style struct {
	// Classed leaves shapes without colours so they are styled through
	// Stylesheet instead.
	Classed bool

	GridFill, GridStroke string
	TrackStroke          string
	TrackWidth           float64
	LineFill             string
	PointFill            string
	PointRadius          float64
	RoundedFill          string
	HandleFill           string

	// SmallHandles draws a small visible dot inside a larger invisible
	// target, instead of a single large circle.
	SmallHandles bool
}

var (
	// StyleWhite draws white cells with grey borders.
	StyleWhite = Style{
		GridFill:    "white",
		GridStroke:  "gray",
		TrackStroke: "gray",
		TrackWidth:  3,
		LineFill:    "hsl(0,40%,70%)",
		PointFill:   "hsl(0,30%,50%)",
		PointRadius: 5,
		RoundedFill: "hsl(0,40%,70%)",
		HandleFill:  "hsl(0,50%,50%)",
	}

	// StyleOutline is StyleWhite with transparent cells.
	StyleOutline = with(StyleWhite, func(s *Style) { s.GridFill = "none" })

	// StyleTinted is StyleWhite with faintly tinted cells.
	StyleTinted = with(StyleWhite, func(s *Style) { s.GridFill = "hsl(0,10%,95%)" })

	// StyleClassed leaves all colours to the stylesheet and uses small
	// handles.
	StyleClassed = Style{
		Classed:      true,
		PointRadius:  5,
		SmallHandles: true,
	}
)

func with(s Style, f func(*Style)) Style {
	f(&s)
	return s
}

const (
	smallHandleRadius    = 6.5
	smallHandleHitRadius = 20
)

func (s Style) handleRadius(g Grid) float64 {
	if s.SmallHandles {
		return smallHandleRadius
	}

	return g.Scale * 0.75
}

func (s Style) handleHitRadius(g Grid) float64 {
	if s.SmallHandles {
		return smallHandleHitRadius
	}

	return s.handleRadius(g)
}

// pick returns v unless the style is classed.
func (s Style) pick(v string) string {
	if s.Classed {
		return ""
	}

	return v
}
