package tags

import "github.com/yohamta/donburi"

var (
	Element = donburi.NewTag().SetName("Element")
	Bar     = donburi.NewTag().SetName("Bar")
	Text    = donburi.NewTag().SetName("Text")
	// Selected marks the element the demo controls act on.
	Selected = donburi.NewTag().SetName("Selected")
)
