package components

import "github.com/yohamta/donburi"

// LoadingData mirrors the loading tracker for the renderers.
type LoadingData struct {
	Target   string
	Progress float64
	Status   string
	Failed   bool
}

var Loading = donburi.NewComponentType[LoadingData]()
