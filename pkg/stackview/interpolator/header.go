package interpolator

// backButtonWidth approximates the chevron plus its margin.
const backButtonWidth = 27

// headerProgress folds current and next into a single 0..2 position:
// 0 entering, 1 settled, 2 covered by the next scene.
func headerProgress(p HeaderInterpolationProps) float64 {
	if p.HasNext {
		return p.Current + p.Next
	}
	return p.Current
}

// ForUIKit moves titles between the center and the back button the way UIKit
// navigation bars do.
func ForUIKit(p HeaderInterpolationProps) HeaderStyle {
	progress := headerProgress(p)

	rightOffset := p.Screen.Width / 2

	titleLeftOffset := p.Screen.Width / 2
	if p.Title.Width > 0 {
		titleLeftOffset = p.Screen.Width/2 - p.Title.Width/2 - backButtonWidth
	}

	backTitleOffset := p.Screen.Width / 2
	if p.BackTitle.Width > 0 {
		backTitleOffset = p.Screen.Width/2 - p.BackTitle.Width/2 - backButtonWidth
	}

	return HeaderStyle{
		BackTitle: Style{
			Opacity:    Interpolate(progress, []float64{0.3, 1, 1.5}, []float64{0, 1, 0}),
			TranslateX: Interpolate(progress, []float64{0, 1, 2}, []float64{backTitleOffset, 0, -backTitleOffset}),
		},
		LeftButton: Style{
			Opacity: Interpolate(progress, []float64{0.3, 1, 1.5}, []float64{0, 1, 0}),
		},
		Title: Style{
			Opacity:    Interpolate(progress, []float64{0, 0.4, 1, 1.5}, []float64{0, 0.1, 1, 0}),
			TranslateX: Interpolate(progress, []float64{0, 1, 2}, []float64{rightOffset, 0, -titleLeftOffset}),
		},
	}
}

// ForFade cross-fades all header elements in place.
func ForFade(p HeaderInterpolationProps) HeaderStyle {
	opacity := Interpolate(headerProgress(p), []float64{0, 1, 2}, []float64{0, 1, 0})

	return HeaderStyle{
		BackTitle:  Style{Opacity: opacity},
		LeftButton: Style{Opacity: opacity},
		Title:      Style{Opacity: opacity},
	}
}

// ForNoHeaderAnimation shows all header elements without movement.
func ForNoHeaderAnimation(HeaderInterpolationProps) HeaderStyle {
	return HeaderStyle{BackTitle: Visible, LeftButton: Visible, Title: Visible}
}
