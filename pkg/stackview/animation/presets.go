package animation

import (
	"strings"
	"time"

	"github.com/tanema/gween/ease"
)

// IOSSpring approximates the UIKit navigation controller push/pop curve.
var IOSSpring = Spring(SpringConfig{
	Stiffness:                 1000,
	Damping:                   500,
	Mass:                      3,
	OvershootClamping:         true,
	RestDisplacementThreshold: 0.01,
	RestSpeedThreshold:        0.01,
})

// FadeInFromBottomAndroid is the Android enter timing.
var FadeInFromBottomAndroid = Timing(TimingConfig{
	Duration: 350 * time.Millisecond,
	Easing:   ease.OutQuint,
})

// FadeOutToBottomAndroid is the Android exit timing.
var FadeOutToBottomAndroid = Timing(TimingConfig{
	Duration: 150 * time.Millisecond,
	Easing:   ease.Linear,
})

// Immediate completes on the first frame.
var Immediate = Timing(TimingConfig{})

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outexpo":    ease.OutExpo,
}

// EasingByName looks up an easing curve by case-insensitive name, e.g.
// "linear", "outCubic" or "in-out-sine".
func EasingByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	fn, ok := easings[key]
	return fn, ok
}
