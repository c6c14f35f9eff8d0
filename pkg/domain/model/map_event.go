package model

// MapEventKind discriminates the map interaction variants
type MapEventKind string

const (
	MapEventNone    MapEventKind = "none"
	MapEventPoint   MapEventKind = "point"
	MapEventFeature MapEventKind = "feature"
)

// MapEvent is the tagged result of a map interaction. It is resolved once
// into a canonical ward name; downstream code never inspects raw
// coordinates again.
type MapEvent struct {
	Kind      MapEventKind
	Lat       float64
	Lng       float64
	FeatureID string
}

// NoSelection returns a MapEvent for an interaction that picked nothing
func NoSelection() MapEvent {
	return MapEvent{Kind: MapEventNone}
}

// PointClicked returns a MapEvent for a raw coordinate click
func PointClicked(lat, lng float64) MapEvent {
	return MapEvent{Kind: MapEventPoint, Lat: lat, Lng: lng}
}

// FeatureSelected returns a MapEvent for a direct feature selection
func FeatureSelected(id string) MapEvent {
	return MapEvent{Kind: MapEventFeature, FeatureID: id}
}
