/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/json"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/hypermodeinc/planimeter/types"
)

// ParseGeoJSON returns the geometries in data, which holds a GeoJSON geometry, Feature or
// FeatureCollection. Features without a geometry are skipped.
func ParseGeoJSON(data []byte) ([]types.Geo, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(err, "while parsing GeoJSON")
	}

	switch probe.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := fc.UnmarshalJSON(data); err != nil {
			return nil, errors.Wrapf(err, "while parsing FeatureCollection")
		}
		geos := make([]types.Geo, 0, len(fc.Features))
		for i, f := range fc.Features {
			if f.Geometry == nil {
				glog.Warningf("Skipping feature %d without geometry", i)
				continue
			}
			geos = append(geos, types.Geo{T: f.Geometry})
		}
		return geos, nil
	case "Feature":
		var f geojson.Feature
		if err := f.UnmarshalJSON(data); err != nil {
			return nil, errors.Wrapf(err, "while parsing Feature")
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []types.Geo{{T: f.Geometry}}, nil
	case "":
		return nil, errors.Errorf("GeoJSON object has no type")
	default:
		var g types.Geo
		if err := g.UnmarshalText(data); err != nil {
			return nil, err
		}
		return []types.Geo{g}, nil
	}
}
