/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"fmt"
	"math"
)

// Helper types for measurements on the earth

// EarthRadiusMeters is the radius of the earth in meters (in a spherical earth model).
const EarthRadiusMeters = 1000 * 6371

// Length denotes a length on Earth in meters.
type Length float64

// Area denotes an area on Earth in square meters.
type Area float64

// String converts the length to human readable units
func (l Length) String() string {
	switch {
	case math.IsNaN(float64(l)):
		return "NaN"
	case math.Abs(float64(l)) > 1000:
		return fmt.Sprintf("%.3f km", l/1000)
	case math.Abs(float64(l)) < 1:
		return fmt.Sprintf("%.3f cm", l*100)
	default:
		return fmt.Sprintf("%.3f m", l)
	}
}

const km2 = 1000 * 1000
const cm2 = 100 * 100

// String converts the area to human readable units
func (a Area) String() string {
	switch {
	case math.IsNaN(float64(a)):
		return "NaN"
	case math.Abs(float64(a)) > km2:
		return fmt.Sprintf("%.3f km^2", a/km2)
	case math.Abs(float64(a)) < 1:
		return fmt.Sprintf("%.3f cm^2", a*cm2)
	default:
		return fmt.Sprintf("%.3f m^2", a)
	}
}
