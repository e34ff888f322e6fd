/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo measures the length and area of geometries on the earth.
package geo

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/planimeter/geodesic"
	"github.com/hypermodeinc/planimeter/types"
)

// Measurement is the size of a geometry.
type Measurement struct {
	// Vertices is the number of distinct vertices measured.
	Vertices int
	// Perimeter is the total length of the lines, or of the rings for areal geometries.
	Perimeter types.Length
	// Area is the enclosed area. It is zero for points and lines.
	Area types.Area
}

// Add adds the measurement o to m.
func (m *Measurement) Add(o Measurement) {
	m.Vertices += o.Vertices
	m.Perimeter += o.Perimeter
	m.Area += o.Area
}

// Measure returns the size of g when its edges are geodesics of earth.
//
// Each ring is taken to bound the smaller of the two regions it separates, regardless of its
// orientation. The area of a polygon is the area of its shell less the area of its holes.
func Measure[E geodesic.Engine](earth E, g types.Geo) (Measurement, error) {
	if g.T == nil {
		return Measurement{}, errors.Errorf("Cannot measure an empty geometry")
	}
	c := calculator[E]{
		line: geodesic.NewPolygonArea(earth, true),
		ring: geodesic.NewPolygonArea(earth, false),
	}
	m, err := c.measure(g.T)
	if err != nil {
		return Measurement{}, err
	}
	glog.V(2).Infof("Measured %T with %d vertices: perimeter %v, area %v",
		g.T, m.Vertices, m.Perimeter, m.Area)
	return m, nil
}

// calculator reuses one accumulator per mode for all the parts of a geometry.
type calculator[E geodesic.Engine] struct {
	line *geodesic.PolygonArea[E]
	ring *geodesic.PolygonArea[E]
}

func (c calculator[E]) measure(g geom.T) (Measurement, error) {
	// Collections take no layout of their own; their parts are checked as they are reached.
	if _, ok := g.(*geom.GeometryCollection); !ok && g.Stride() < 2 {
		return Measurement{}, errors.Errorf("Measuring requires at least 2D co-ordinates.")
	}
	var m Measurement
	switch v := g.(type) {
	case *geom.Point:
		if !v.Empty() {
			m.Vertices = 1
		}
	case *geom.MultiPoint:
		m.Vertices = v.NumPoints()
	case *geom.LineString:
		m = c.measureLine(v.Coords())
	case *geom.MultiLineString:
		for i := 0; i < v.NumLineStrings(); i++ {
			m.Add(c.measureLine(v.LineString(i).Coords()))
		}
	case *geom.LinearRing:
		m = c.measureRing(v.Coords())
	case *geom.Polygon:
		m = c.measurePolygon(v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			m.Add(c.measurePolygon(v.Polygon(i)))
		}
	case *geom.GeometryCollection:
		for _, part := range v.Geoms() {
			pm, err := c.measure(part)
			if err != nil {
				return Measurement{}, errors.Wrapf(err, "while measuring collection")
			}
			m.Add(pm)
		}
	default:
		return Measurement{}, errors.Errorf("Cannot measure geometry of type %T", v)
	}
	return m, nil
}

func (c calculator[E]) measureLine(coords []geom.Coord) Measurement {
	c.line.Clear()
	for _, coord := range coords {
		// GeoJSON stores points as [longitude, latitude].
		c.line.AddPoint(coord.Y(), coord.X())
	}
	res := c.line.Compute(false, true)
	return Measurement{Vertices: int(res.Count), Perimeter: types.Length(res.Perimeter)}
}

func (c calculator[E]) measureRing(coords []geom.Coord) Measurement {
	c.ring.Clear()
	n := len(coords)
	if n > 1 && coords[0].Equal(geom.XY, coords[n-1]) {
		n--
	}
	for _, coord := range coords[:n] {
		c.ring.AddPoint(coord.Y(), coord.X())
	}
	res := c.ring.Compute(false, true)
	return Measurement{
		Vertices:  int(res.Count),
		Perimeter: types.Length(res.Perimeter),
		Area:      types.Area(math.Abs(res.Area)),
	}
}

func (c calculator[E]) measurePolygon(p *geom.Polygon) Measurement {
	var m Measurement
	for i := 0; i < p.NumLinearRings(); i++ {
		rm := c.measureRing(p.LinearRing(i).Coords())
		if i > 0 {
			rm.Area = -rm.Area
		}
		m.Add(rm)
	}
	return m
}
