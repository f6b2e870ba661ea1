// Package interpolator maps transition progress to visual styles.
//
// Every interpolator is a pure function: it receives progress values and
// layout and returns a style. Interpolators must not keep state or cause side
// effects; the same input always yields the same style. Callers substitute
// their own functions to change how cards and headers move.
package interpolator

// Layout is a measured size in pixels.
type Layout struct {
	Width  float64
	Height float64
}

// IsZero reports whether the layout has not been measured yet.
func (l Layout) IsZero() bool {
	return l.Width == 0 || l.Height == 0
}

// Style holds the derived visual attributes of one element.
type Style struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
}

// Visible is a fully opaque, untranslated Style.
var Visible = Style{Opacity: 1}

// CardInterpolationProps is the input of a CardStyleInterpolator.
type CardInterpolationProps struct {
	Current float64 // Progress of this card
	Next    float64 // Progress of the card above, valid when HasNext
	HasNext bool
	Closing bool
	Layout  Layout
}

// CardStyle is the output of a CardStyleInterpolator.
type CardStyle struct {
	Container     Style
	Card          Style
	Overlay       Style // Dimming drawn on top of the card
	ShadowOpacity float64
}

// CardStyleInterpolator computes the style of a card.
type CardStyleInterpolator func(props CardInterpolationProps) CardStyle

// HeaderInterpolationProps is the input of a HeaderStyleInterpolator.
//
// HasNext is true whenever a scene is stacked above, settled or not, so a
// covered header keeps folding to its covered position. NextTransitioning
// tells a moving neighbor apart from one at rest.
type HeaderInterpolationProps struct {
	Current           float64
	Next              float64
	HasNext           bool
	NextTransitioning bool
	Screen            Layout
	Title             Layout // Zero until measured
	BackTitle         Layout // Zero until measured
}

// HeaderStyle is the output of a HeaderStyleInterpolator.
type HeaderStyle struct {
	BackTitle  Style
	LeftButton Style
	Title      Style
}

// HeaderStyleInterpolator computes the style of one header segment.
type HeaderStyleInterpolator func(props HeaderInterpolationProps) HeaderStyle

// Interpolate maps x through the piecewise linear function defined by the
// input and output ranges. Input must be ascending. Values outside the input
// range are clamped to the first or last output.
func Interpolate(x float64, input, output []float64) float64 {
	if len(input) == 0 || len(input) != len(output) {
		return x
	}
	if x <= input[0] {
		return output[0]
	}
	for i := 1; i < len(input); i++ {
		if x > input[i] {
			continue
		}
		span := input[i] - input[i-1]
		if span == 0 {
			return output[i]
		}
		t := (x - input[i-1]) / span
		return output[i-1] + t*(output[i]-output[i-1])
	}
	return output[len(output)-1]
}
