package geo

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Resolver resolves map interactions into canonical ward names using the
// ward boundary GeoJSON. It is read-only after construction and safe for
// concurrent use.
type Resolver struct {
	features    []*geojson.Feature
	propertyKey string
}

// NewResolver loads the ward boundaries from a GeoJSON file. propertyKey
// names the feature property holding the ward name; when empty the first
// feature's first property key is used, matching how the source dataset
// is usually shaped.
func NewResolver(path, propertyKey string) (*Resolver, error) {
	data, err := os.ReadFile(path) // #nosec G304 - configured path
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read ward boundaries", goerr.T(types.ErrTagDataLoad), goerr.V("path", path))
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse ward boundaries", goerr.T(types.ErrTagDataLoad), goerr.V("path", path))
	}
	if len(fc.Features) == 0 {
		return nil, goerr.New("ward boundary file has no features", goerr.T(types.ErrTagDataLoad), goerr.V("path", path))
	}

	if propertyKey == "" {
		for key := range fc.Features[0].Properties {
			if propertyKey == "" || key < propertyKey {
				propertyKey = key
			}
		}
	}

	return &Resolver{features: fc.Features, propertyKey: propertyKey}, nil
}

// Resolve turns a map event into a ward name. The second return value is
// false when the event selects nothing.
func (r *Resolver) Resolve(event model.MapEvent) (string, bool) {
	switch event.Kind {
	case model.MapEventPoint:
		return r.resolvePoint(orb.Point{event.Lng, event.Lat})
	case model.MapEventFeature:
		return r.resolveFeature(event.FeatureID)
	default:
		return "", false
	}
}

func (r *Resolver) resolvePoint(pt orb.Point) (string, bool) {
	for _, f := range r.features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if planar.PolygonContains(g, pt) {
				return r.wardName(f), true
			}
		case orb.MultiPolygon:
			if planar.MultiPolygonContains(g, pt) {
				return r.wardName(f), true
			}
		}
	}
	return "", false
}

func (r *Resolver) resolveFeature(id string) (string, bool) {
	for _, f := range r.features {
		if f.ID != nil && fmt.Sprint(f.ID) == id {
			return r.wardName(f), true
		}
		if r.wardName(f) == id {
			return id, true
		}
	}
	return "", false
}

func (r *Resolver) wardName(f *geojson.Feature) string {
	if v, ok := f.Properties[r.propertyKey]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

// Wards returns all ward names in feature order
func (r *Resolver) Wards() []string {
	wards := make([]string, 0, len(r.features))
	for _, f := range r.features {
		if name := r.wardName(f); name != "" {
			wards = append(wards, name)
		}
	}
	return wards
}
