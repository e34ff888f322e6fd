/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package sphere is a geodesic engine for a spherical earth. Geodesics are great circles, so
// both geodesic problems have closed form solutions.
package sphere

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/hypermodeinc/planimeter/geodesic"
	"github.com/hypermodeinc/planimeter/types"
)

// Sphere is a sphere of a fixed radius. It has no mutable state and can be shared freely.
type Sphere struct {
	radius float64
}

// Earth is the spherical earth used for distances elsewhere in this module.
var Earth = New(types.EarthRadiusMeters)

// New returns a sphere of the given radius.
func New(radius float64) *Sphere {
	return &Sphere{radius: radius}
}

// EllipsoidArea returns the surface area of the sphere.
func (s *Sphere) EllipsoidArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// MajorRadius returns the radius of the sphere.
func (s *Sphere) MajorRadius() float64 { return s.radius }

// Flattening is always zero for a sphere.
func (s *Sphere) Flattening() float64 { return 0 }

// Inverse returns the great circle arc from (lat1, lon1) to (lat2, lon2).
func (s *Sphere) Inverse(lat1, lon1, lat2, lon2 float64, caps geodesic.Mask) geodesic.Inverse {
	var res geodesic.Inverse
	ll1 := s2.LatLngFromDegrees(lat1, lon1)
	ll2 := s2.LatLngFromDegrees(lat2, lon2)
	if caps.Has(geodesic.Distance) {
		res.Distance = ll1.Distance(ll2).Radians() * s.radius
	}
	if caps.Has(geodesic.Azimuth) {
		res.Azi1, res.Azi2 = azimuths(ll1, ll2)
	}
	if caps.Has(geodesic.Area) {
		res.AreaDiff = s.excess(lat1, lon1, lat2, lon2)
	}
	return res
}

// Direct follows the great circle leaving (lat1, lon1) with azimuth azi1 for a distance s12,
// which may exceed half the circumference or be negative. Lon2 is unrolled: it is lon1 plus the
// signed change in longitude along the path, so it tells how often the path wound around the
// poles. The area differential is summed over sub-arcs shorter than a quarter circle, so it
// belongs to the path travelled rather than to the shortest arc between its ends.
func (s *Sphere) Direct(lat1, lon1, azi1, s12 float64, caps geodesic.Mask) geodesic.Direct {
	sigma := s12 / s.radius
	n := 1
	if !math.IsNaN(sigma) && !math.IsInf(sigma, 0) {
		n = max(1, int(math.Ceil(math.Abs(sigma)/(math.Pi/2))))
	}

	var res geodesic.Direct
	prev := s2.LatLngFromDegrees(lat1, lon1)
	lat, lon := lat1, geodesic.AngNormalize(lon1)
	res.Lon2 = lon1
	for i := 1; i <= n; i++ {
		next := s.follow(lat1, lon1, azi1, sigma*float64(i)/float64(n))
		nextLat, nextLon := next.Lat.Degrees(), next.Lng.Degrees()
		if caps.Has(geodesic.Area) {
			res.AreaDiff += s.excess(lat, lon, nextLat, nextLon)
		}
		res.Lon2 += geodesic.AngDiff(lon, nextLon)
		if i == n && caps.Has(geodesic.Azimuth) {
			_, res.Azi2 = azimuths(prev, next)
		}
		prev, lat, lon = next, nextLat, nextLon
	}
	res.Lat2 = lat
	return res
}

// follow returns the point reached by travelling an angle sigma, in radians, along the great
// circle leaving (lat1, lon1) with azimuth azi1. The longitude is normalized.
func (s *Sphere) follow(lat1, lon1, azi1, sigma float64) s2.LatLng {
	phi1 := s1.Angle(lat1) * s1.Degree
	alpha := s1.Angle(azi1) * s1.Degree

	sinPhi1, cosPhi1 := math.Sincos(phi1.Radians())
	sinAlpha, cosAlpha := math.Sincos(alpha.Radians())
	sinSigma, cosSigma := math.Sincos(sigma)

	sinPhi2 := sinPhi1*cosSigma + cosPhi1*sinSigma*cosAlpha
	phi2 := math.Asin(math.Max(-1, math.Min(1, sinPhi2)))
	dlambda := math.Atan2(sinAlpha*sinSigma*cosPhi1, cosSigma-sinPhi1*sinPhi2)

	return s2.LatLng{
		Lat: s1.Angle(phi2),
		Lng: s1.Angle(lon1)*s1.Degree + s1.Angle(dlambda),
	}.Normalized()
}

// azimuths returns the forward azimuths in degrees at both ends of the arc from a to b.
func azimuths(a, b s2.LatLng) (azi1, azi2 float64) {
	sinPhi1, cosPhi1 := math.Sincos(a.Lat.Radians())
	sinPhi2, cosPhi2 := math.Sincos(b.Lat.Radians())
	sinDl, cosDl := math.Sincos((b.Lng - a.Lng).Radians())

	azi1 = math.Atan2(sinDl*cosPhi2, cosPhi1*sinPhi2-sinPhi1*cosPhi2*cosDl)
	azi2 = math.Atan2(sinDl*cosPhi1, -cosPhi2*sinPhi1+sinPhi2*cosPhi1*cosDl)
	return s1.Angle(azi1).Degrees(), s1.Angle(azi2).Degrees()
}

// excess returns the signed area, counter-clockwise positive, of the quadrilateral with corners
// (lat1, lon1), (0, lon1), (0, lon2) and (lat2, lon2) whose top side is the great circle arc.
func (s *Sphere) excess(lat1, lon1, lat2, lon2 float64) float64 {
	dlambda := s1.Angle(geodesic.AngDiff(lon1, lon2)) * s1.Degree
	t1 := math.Tan((s1.Angle(lat1) * s1.Degree).Radians() / 2)
	t2 := math.Tan((s1.Angle(lat2) * s1.Degree).Radians() / 2)
	sinHalf, cosHalf := math.Sincos(dlambda.Radians() / 2)
	e := 2 * math.Atan2(sinHalf*(t1+t2), cosHalf*(1+t1*t2))
	return e * s.radius * s.radius
}
