/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import "math"

// Transit reports whether the short path from lon1 to lon2 crosses the antimeridian: 1 when
// crossing it eastward, -1 when crossing it westward and 0 otherwise.
//
// Only the parity of the total over a closed loop is used, to detect loops that encircle a pole.
// Any single reference meridian gives the same parity, so counting the antimeridian instead of
// the prime meridian does not change the area.
func Transit(lon1, lon2 float64) int {
	lon1 = AngNormalize(lon1)
	lon2 = AngNormalize(lon2)
	// Same difference the engines use for the edge itself.
	lon12 := AngDiff(lon1, lon2)
	switch {
	case lon1 >= 0 && lon2 < 0 && lon12 > 0:
		return 1
	case lon1 < 0 && lon2 >= 0 && lon12 < 0:
		return -1
	default:
		return 0
	}
}

// transitDirect is Transit for a path whose end longitude lon2 is unrolled, as returned by
// Engine.Direct. It counts every antimeridian crossing, so a path may wind around a pole more
// than once.
func transitDirect(lon1, lon2 float64) int {
	return lap(lon2) - lap(lon1)
}

// lap numbers the 360 degree bands [-180, 180) + 360k of longitude.
func lap(lon float64) int {
	return int(math.Floor((lon + 180) / 360))
}
