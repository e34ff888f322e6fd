/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/planimeter/types"
)

// SphericalArea returns the area of g on a sphere of the given radius, computed from S2 loops
// rather than by accumulating edges. It follows the conventions of Measure: every ring bounds
// the smaller region, and holes are subtracted from their shell.
func SphericalArea(g types.Geo, radius float64) (types.Area, error) {
	if g.T == nil {
		return 0, errors.Errorf("Cannot measure an empty geometry")
	}
	sr, err := sphericalArea(g.T)
	if err != nil {
		return 0, err
	}
	return types.Area(sr * radius * radius), nil
}

func sphericalArea(g geom.T) (float64, error) {
	switch v := g.(type) {
	case *geom.Point, *geom.MultiPoint, *geom.LineString, *geom.MultiLineString:
		return 0, nil
	case *geom.LinearRing:
		return loopArea(v.Coords()), nil
	case *geom.Polygon:
		return polygonArea(v), nil
	case *geom.MultiPolygon:
		var a float64
		for i := 0; i < v.NumPolygons(); i++ {
			a += polygonArea(v.Polygon(i))
		}
		return a, nil
	case *geom.GeometryCollection:
		var a float64
		for _, part := range v.Geoms() {
			pa, err := sphericalArea(part)
			if err != nil {
				return 0, err
			}
			a += pa
		}
		return a, nil
	default:
		return 0, errors.Errorf("Cannot measure geometry of type %T", v)
	}
}

func polygonArea(p *geom.Polygon) float64 {
	var a float64
	for i := 0; i < p.NumLinearRings(); i++ {
		la := loopArea(p.LinearRing(i).Coords())
		if i > 0 {
			la = -la
		}
		a += la
	}
	return a
}

// loopArea is the area in steradians of the smaller region bounded by the ring.
func loopArea(coords []geom.Coord) float64 {
	l := loopFromCoords(coords)
	if l == nil {
		return 0
	}
	a := l.Area()
	if a > 2*math.Pi {
		a = 4*math.Pi - a
	}
	return a
}

// loopFromCoords converts a ring to an s2.Loop. S2 loops are implicitly closed, so a repeated
// closing coordinate is dropped. Rings with fewer than 3 distinct vertices enclose nothing and
// yield nil.
func loopFromCoords(coords []geom.Coord) *s2.Loop {
	n := len(coords)
	if n > 1 && coords[0].Equal(geom.XY, coords[n-1]) {
		n--
	}
	if n < 3 {
		return nil
	}
	pts := make([]s2.Point, n)
	for i, c := range coords[:n] {
		pts[i] = pointFromCoord(c)
	}
	return s2.LoopFromPoints(pts)
}

func pointFromCoord(r geom.Coord) s2.Point {
	// GeoJSON stores coordinates as [long, lat].
	return s2.PointFromLatLng(s2.LatLngFromDegrees(r.Y(), r.X()))
}
