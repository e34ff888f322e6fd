/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import "math"

// twoSum returns s = round(u + v) and the rounding error t, so that u + v == s + t exactly.
func twoSum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// AngNormalize reduces an angle in degrees to [-180, 180).
func AngNormalize(x float64) float64 {
	x = math.Remainder(x, 360)
	if x == 180 {
		return -180
	}
	return x
}

// remainder180 reduces an angle in degrees to (-180, 180].
func remainder180(x float64) float64 {
	x = math.Remainder(x, 360)
	if x == -180 {
		return 180
	}
	return x
}

// AngDiff returns y - x reduced to (-180, 180]. The reduction is done with an error-free sum so
// that the result is accurate even when x and y are large.
func AngDiff(x, y float64) float64 {
	d, t := twoSum(remainder180(-x), remainder180(y))
	d = remainder180(d)
	// y - x = d + t (mod 360) exactly. Only d == 180 with t > 0 leaves the range.
	if d == 180 && t > 0 {
		d = -180
	}
	return d + t
}
