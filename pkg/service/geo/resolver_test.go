package geo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/service/geo"
)

const testBoundaries = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "w1",
      "properties": {"WardName": "Ward 1"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "id": "w2",
      "properties": {"WardName": "Ward 2"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [[[[2, 0], [3, 0], [3, 1], [2, 1], [2, 0]]]]
      }
    }
  ]
}`

func writeBoundaries(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wards.geojson")
	gt.NoError(t, os.WriteFile(path, []byte(testBoundaries), 0o644)).Required()
	return path
}

func TestResolver(t *testing.T) {
	resolver, err := geo.NewResolver(writeBoundaries(t), "WardName")
	gt.NoError(t, err).Required()

	t.Run("point inside a polygon resolves", func(t *testing.T) {
		ward, ok := resolver.Resolve(model.PointClicked(0.5, 0.5))
		gt.Bool(t, ok).True()
		gt.Value(t, ward).Equal("Ward 1")
	})

	t.Run("point inside a multipolygon resolves", func(t *testing.T) {
		ward, ok := resolver.Resolve(model.PointClicked(0.5, 2.5))
		gt.Bool(t, ok).True()
		gt.Value(t, ward).Equal("Ward 2")
	})

	t.Run("point outside all wards does not resolve", func(t *testing.T) {
		_, ok := resolver.Resolve(model.PointClicked(5, 5))
		gt.Bool(t, ok).False()
	})

	t.Run("feature id resolves", func(t *testing.T) {
		ward, ok := resolver.Resolve(model.FeatureSelected("w2"))
		gt.Bool(t, ok).True()
		gt.Value(t, ward).Equal("Ward 2")
	})

	t.Run("no selection does not resolve", func(t *testing.T) {
		_, ok := resolver.Resolve(model.NoSelection())
		gt.Bool(t, ok).False()
	})

	t.Run("ward names are listed in feature order", func(t *testing.T) {
		wards := resolver.Wards()
		gt.Array(t, wards).Length(2)
		gt.Value(t, wards[0]).Equal("Ward 1")
		gt.Value(t, wards[1]).Equal("Ward 2")
	})
}

func TestResolverLoad(t *testing.T) {
	t.Run("missing file fails", func(t *testing.T) {
		_, err := geo.NewResolver(filepath.Join(t.TempDir(), "absent.geojson"), "")
		gt.Error(t, err)
	})

	t.Run("empty collection fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.geojson")
		gt.NoError(t, os.WriteFile(path, []byte(`{"type":"FeatureCollection","features":[]}`), 0o644)).Required()

		_, err := geo.NewResolver(path, "")
		gt.Error(t, err)
	})

	t.Run("property key falls back to the first property", func(t *testing.T) {
		resolver, err := geo.NewResolver(writeBoundaries(t), "")
		gt.NoError(t, err).Required()

		ward, ok := resolver.Resolve(model.PointClicked(0.5, 0.5))
		gt.Bool(t, ok).True()
		gt.Value(t, ward).Equal("Ward 1")
	})
}
