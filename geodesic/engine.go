/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

// Engine solves the direct and inverse geodesic problems on a reference surface. Angles are in
// degrees, lengths in the units of MajorRadius and areas in those units squared.
//
// Implementations must be safe to share between PolygonArea instances, that is, they must not
// mutate hidden state while solving.
type Engine interface {
	// EllipsoidArea is the total area of the surface.
	EllipsoidArea() float64
	// MajorRadius is the equatorial radius.
	MajorRadius() float64
	// Flattening is the flattening of the surface, zero for a sphere.
	Flattening() float64
	// Inverse returns the geodesic between (lat1, lon1) and (lat2, lon2).
	Inverse(lat1, lon1, lat2, lon2 float64, caps Mask) Inverse
	// Direct returns the end of the geodesic starting at (lat1, lon1) with azimuth azi1 and
	// length s12. The length is not limited, and the result describes the path travelled.
	Direct(lat1, lon1, azi1, s12 float64, caps Mask) Direct
}

// Inverse is the solution of the inverse problem. Fields whose capability was not requested are
// left at zero.
type Inverse struct {
	Distance float64
	Azi1     float64
	Azi2     float64
	// AreaDiff is the signed area, measured counter-clockwise, of the quadrilateral bounded by
	// the geodesic, the two meridians through its ends and the equator.
	AreaDiff float64
}

// Direct is the solution of the direct problem.
type Direct struct {
	Lat2 float64
	// Lon2 is unrolled: lon1 plus the signed change in longitude along the geodesic. It is not
	// reduced to [-180, 180).
	Lon2 float64
	Azi2 float64
	// AreaDiff is as for Inverse, taken along the geodesic travelled.
	AreaDiff float64
}
