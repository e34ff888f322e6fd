/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import "math"

// Result is the outcome of closing a polygon or polyline.
type Result struct {
	// Count is the number of vertices, including a tentative one for the Test methods.
	Count uint
	// Perimeter is the length of the closed polygon, or of the open path for a polyline.
	Perimeter float64
	// Area is the enclosed area. It is NaN for a polyline.
	Area float64
}

// PolygonArea accumulates the perimeter and area of a polygon whose edges are geodesics of the
// engine E. Points and edges are added one at a time, and results can be requested at any point.
//
// If two consecutive vertices are nearly antipodal the geodesic joining them is not unique and
// the area is ambiguous. Callers should add an intermediate vertex in that case.
//
// A PolygonArea must not be modified concurrently. Compute, TestPoint, TestEdge and the
// inspectors do not modify it.
type PolygonArea[E Engine] struct {
	earth    E
	area0    float64
	polyline bool
	mask     Mask

	num       uint
	crossings int
	areasum   Accumulator
	perimsum  Accumulator

	lat0, lon0 float64
	lat1, lon1 float64
}

// NewPolygonArea returns an empty PolygonArea for the engine earth. If polyline is true only the
// length of the open path is tracked.
func NewPolygonArea[E Engine](earth E, polyline bool) *PolygonArea[E] {
	p := &PolygonArea[E]{
		earth:    earth,
		area0:    earth.EllipsoidArea(),
		polyline: polyline,
		mask:     Latitude | Longitude | Distance,
	}
	if !polyline {
		p.mask |= Area
	}
	p.Clear()
	return p
}

// Clear resets p to the empty polygon.
func (p *PolygonArea[E]) Clear() {
	p.num = 0
	p.crossings = 0
	p.areasum.Set(0)
	p.perimsum.Set(0)
	p.lat0, p.lon0 = math.NaN(), math.NaN()
	p.lat1, p.lon1 = math.NaN(), math.NaN()
}

// AddPoint adds a vertex at (lat, lon). The latitude should be in [-90, 90] and the longitude in
// [-540, 540).
func (p *PolygonArea[E]) AddPoint(lat, lon float64) {
	lon = AngNormalize(lon)
	if p.num == 0 {
		p.lat0, p.lon0 = lat, lon
		p.lat1, p.lon1 = lat, lon
		p.num = 1
		return
	}
	inv := p.earth.Inverse(p.lat1, p.lon1, lat, lon, p.mask)
	p.perimsum.Add(inv.Distance)
	if !p.polyline {
		p.areasum.Add(inv.AreaDiff)
		p.crossings += Transit(p.lon1, lon)
	}
	p.lat1, p.lon1 = lat, lon
	p.num++
}

// AddEdge adds a vertex by travelling s along a geodesic with azimuth azi from the current
// vertex. It does nothing if no vertex has been added yet.
func (p *PolygonArea[E]) AddEdge(azi, s float64) {
	if p.num == 0 {
		return
	}
	dir := p.earth.Direct(p.lat1, p.lon1, azi, s, p.mask)
	p.perimsum.Add(s)
	if !p.polyline {
		p.areasum.Add(dir.AreaDiff)
		p.crossings += transitDirect(p.lon1, dir.Lon2)
	}
	p.lat1, p.lon1 = dir.Lat2, AngNormalize(dir.Lon2)
	p.num++
}

// Compute closes the polygon and returns its perimeter and area.
//
// Counter-clockwise traversal gives a positive area unless reverse is set, in which case
// clockwise traversal is positive. If sign is set the area is signed and lies in
// (-A/2, A/2], where A is the area of the whole surface. Otherwise it lies in [0, A), and a
// polygon traversed in the negative sense is taken to enclose the rest of the surface.
func (p *PolygonArea[E]) Compute(reverse, sign bool) Result {
	res := Result{Count: p.num}
	if p.polyline {
		res.Area = math.NaN()
	}
	if p.num < 2 {
		return res
	}
	if p.polyline {
		res.Perimeter = p.perimsum.Sum()
		return res
	}
	inv := p.earth.Inverse(p.lat1, p.lon1, p.lat0, p.lon0, p.mask)
	res.Perimeter = p.perimsum.SumWith(inv.Distance)
	area := p.areasum
	area.Add(inv.AreaDiff)
	crossings := p.crossings + Transit(p.lon1, p.lon0)
	res.Area = reduceArea(area, p.area0, crossings, reverse, sign)
	return res
}

// TestPoint returns the result Compute would give if a vertex at (lat, lon) were added. p is not
// modified. The tentative edges are summed in plain float64 arithmetic, which is fast enough to
// track a pointer but slightly less accurate than AddPoint followed by Compute.
func (p *PolygonArea[E]) TestPoint(lat, lon float64, reverse, sign bool) Result {
	res := Result{Count: p.num + 1}
	if p.polyline {
		res.Area = math.NaN()
	}
	if p.num == 0 {
		return res
	}
	lon = AngNormalize(lon)
	res.Perimeter = p.perimsum.Sum()
	inv := p.earth.Inverse(p.lat1, p.lon1, lat, lon, p.mask)
	res.Perimeter += inv.Distance
	if p.polyline {
		return res
	}
	area := p.areasum.Sum() + inv.AreaDiff
	crossings := p.crossings + Transit(p.lon1, lon)

	inv = p.earth.Inverse(lat, lon, p.lat0, p.lon0, p.mask)
	res.Perimeter += inv.Distance
	area += inv.AreaDiff
	crossings += Transit(lon, p.lon0)

	res.Area = reduceAreaFast(area, p.area0, crossings, reverse, sign)
	return res
}

// TestEdge returns the result Compute would give if an edge with azimuth azi and length s were
// added. p is not modified. An empty polygon has no vertex to start the edge from, so the result
// has a zero count and NaN perimeter and area.
func (p *PolygonArea[E]) TestEdge(azi, s float64, reverse, sign bool) Result {
	if p.num == 0 {
		return Result{Perimeter: math.NaN(), Area: math.NaN()}
	}
	res := Result{Count: p.num + 1, Perimeter: p.perimsum.Sum() + s}
	if p.polyline {
		res.Area = math.NaN()
		return res
	}
	dir := p.earth.Direct(p.lat1, p.lon1, azi, s, p.mask)
	lat, lon := dir.Lat2, AngNormalize(dir.Lon2)
	area := p.areasum.Sum() + dir.AreaDiff
	crossings := p.crossings + transitDirect(p.lon1, dir.Lon2)

	inv := p.earth.Inverse(lat, lon, p.lat0, p.lon0, p.mask)
	res.Perimeter += inv.Distance
	area += inv.AreaDiff
	crossings += Transit(lon, p.lon0)

	res.Area = reduceAreaFast(area, p.area0, crossings, reverse, sign)
	return res
}

// CurrentPoint returns the last vertex added, or NaNs if there is none.
func (p *PolygonArea[E]) CurrentPoint() (lat, lon float64) {
	return p.lat1, p.lon1
}

// Count returns the number of vertices added so far.
func (p *PolygonArea[E]) Count() uint { return p.num }

// Polyline reports whether p tracks an open path rather than a polygon.
func (p *PolygonArea[E]) Polyline() bool { return p.polyline }

// EllipsoidArea returns the area of the whole surface, as captured at construction.
func (p *PolygonArea[E]) EllipsoidArea() float64 { return p.area0 }

// MajorRadius returns the equatorial radius of the engine's surface.
func (p *PolygonArea[E]) MajorRadius() float64 { return p.earth.MajorRadius() }

// Flattening returns the flattening of the engine's surface.
func (p *PolygonArea[E]) Flattening() float64 { return p.earth.Flattening() }

// reduceArea turns the accumulated area differentials of a closed loop into an area. The sum is
// only defined modulo area0, and by area0/2 more when the loop encircles a pole, which an odd
// number of antimeridian crossings reveals.
func reduceArea(area Accumulator, area0 float64, crossings int, reverse, sign bool) float64 {
	area.Remainder(area0)
	if crossings&1 != 0 {
		if area.Sum() < 0 {
			area.Add(area0 / 2)
		} else {
			area.Add(-area0 / 2)
		}
	}
	// The differentials sum to the clockwise area.
	if !reverse {
		area.Negate()
	}
	if sign {
		if area.Sum() > area0/2 {
			area.Add(-area0)
		} else if area.Sum() <= -area0/2 {
			area.Add(area0)
		}
	} else {
		if area.Sum() >= area0 {
			area.Add(-area0)
		} else if area.Sum() < 0 {
			area.Add(area0)
		}
	}
	return 0 + area.Sum()
}

// reduceAreaFast is reduceArea in plain float64 arithmetic.
func reduceAreaFast(area, area0 float64, crossings int, reverse, sign bool) float64 {
	area = math.Remainder(area, area0)
	if crossings&1 != 0 {
		if area < 0 {
			area += area0 / 2
		} else {
			area -= area0 / 2
		}
	}
	if !reverse {
		area = -area
	}
	if sign {
		if area > area0/2 {
			area -= area0
		} else if area <= -area0/2 {
			area += area0
		}
	} else {
		if area >= area0 {
			area -= area0
		} else if area < 0 {
			area += area0
		}
	}
	return 0 + area
}
