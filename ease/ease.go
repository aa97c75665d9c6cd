// Package ease maps normalized linear time t in [0,1] to eased progress.
//
// OutQuad is the default curve used by every tween in this module. The rest of the
// Penner family comes from github.com/tanema/gween/ease and is reachable by name so
// that presets in config files can pick a curve.
package ease

import (
	"fmt"
	"sort"
	"strings"

	gease "github.com/tanema/gween/ease"
)

// Func remaps linear progress t in [0,1] to eased progress.
type Func func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// OutQuad decelerates to the end: 1 - (1-t)^2.
func OutQuad(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// Default is the curve used when a tween does not specify one.
var Default Func = OutQuad

// FromTween adapts a gween easing function (t, begin, change, duration) to a Func by
// evaluating it over a unit range.
func FromTween(f gease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(f(float32(t), 0, 1, 1))
	}
}

var named = map[string]Func{
	"linear":       Linear,
	"outQuad":      OutQuad,
	"inQuad":       FromTween(gease.InQuad),
	"inOutQuad":    FromTween(gease.InOutQuad),
	"outInQuad":    FromTween(gease.OutInQuad),
	"inCubic":      FromTween(gease.InCubic),
	"outCubic":     FromTween(gease.OutCubic),
	"inOutCubic":   FromTween(gease.InOutCubic),
	"outInCubic":   FromTween(gease.OutInCubic),
	"inQuart":      FromTween(gease.InQuart),
	"outQuart":     FromTween(gease.OutQuart),
	"inOutQuart":   FromTween(gease.InOutQuart),
	"outInQuart":   FromTween(gease.OutInQuart),
	"inQuint":      FromTween(gease.InQuint),
	"outQuint":     FromTween(gease.OutQuint),
	"inOutQuint":   FromTween(gease.InOutQuint),
	"outInQuint":   FromTween(gease.OutInQuint),
	"inSine":       FromTween(gease.InSine),
	"outSine":      FromTween(gease.OutSine),
	"inOutSine":    FromTween(gease.InOutSine),
	"outInSine":    FromTween(gease.OutInSine),
	"inExpo":       FromTween(gease.InExpo),
	"outExpo":      FromTween(gease.OutExpo),
	"inOutExpo":    FromTween(gease.InOutExpo),
	"outInExpo":    FromTween(gease.OutInExpo),
	"inCirc":       FromTween(gease.InCirc),
	"outCirc":      FromTween(gease.OutCirc),
	"inOutCirc":    FromTween(gease.InOutCirc),
	"outInCirc":    FromTween(gease.OutInCirc),
	"inElastic":    FromTween(gease.InElastic),
	"outElastic":   FromTween(gease.OutElastic),
	"inOutElastic": FromTween(gease.InOutElastic),
	"outInElastic": FromTween(gease.OutInElastic),
	"inBack":       FromTween(gease.InBack),
	"outBack":      FromTween(gease.OutBack),
	"inOutBack":    FromTween(gease.InOutBack),
	"outInBack":    FromTween(gease.OutInBack),
	"inBounce":     FromTween(gease.InBounce),
	"outBounce":    FromTween(gease.OutBounce),
	"inOutBounce":  FromTween(gease.InOutBounce),
	"outInBounce":  FromTween(gease.OutInBounce),
}

// Lookup returns the curve registered under name. Matching ignores case; an empty name
// yields Default.
func Lookup(name string) (Func, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}
	if f, ok := named[name]; ok {
		return f, nil
	}
	for k, f := range named {
		if strings.EqualFold(k, name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("ease: unknown curve %q", name)
}

// Names lists every registered curve, sorted.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
