package interpolator

// ForHorizontalIOS slides the card in from the right edge while the card
// below it drifts left by a third of the screen.
func ForHorizontalIOS(p CardInterpolationProps) CardStyle {
	translateFocused := Interpolate(p.Current, []float64{0, 1}, []float64{p.Layout.Width, 0})

	translateUnfocused := 0.0
	if p.HasNext {
		translateUnfocused = Interpolate(p.Next, []float64{0, 1}, []float64{0, -p.Layout.Width * 0.3})
	}

	return CardStyle{
		Container:     Visible,
		Card:          Style{Opacity: 1, TranslateX: translateFocused + translateUnfocused},
		Overlay:       Style{Opacity: Interpolate(p.Current, []float64{0, 1}, []float64{0, 0.07})},
		ShadowOpacity: Interpolate(p.Current, []float64{0, 1}, []float64{0, 0.3}),
	}
}

// ForVerticalIOS slides the card up from the bottom edge.
func ForVerticalIOS(p CardInterpolationProps) CardStyle {
	return CardStyle{
		Container: Visible,
		Card: Style{
			Opacity:    1,
			TranslateY: Interpolate(p.Current, []float64{0, 1}, []float64{p.Layout.Height, 0}),
		},
	}
}

// ForFadeFromBottomAndroid fades the card in while it rises a short distance.
func ForFadeFromBottomAndroid(p CardInterpolationProps) CardStyle {
	return CardStyle{
		Container: Visible,
		Card: Style{
			Opacity:    Interpolate(p.Current, []float64{0, 0.5, 0.9, 1}, []float64{0, 0.25, 0.7, 1}),
			TranslateY: Interpolate(p.Current, []float64{0, 1}, []float64{p.Layout.Height * 0.08, 0}),
		},
	}
}

// ForNoAnimation shows the card without movement.
func ForNoAnimation(CardInterpolationProps) CardStyle {
	return CardStyle{Container: Visible, Card: Visible}
}
