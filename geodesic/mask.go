/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

// Mask selects the outputs an Engine has to compute. It is only a hint: an engine that always
// computes every output is valid.
type Mask uint32

const (
	// None requests no optional output.
	None Mask = 0
	// Latitude requests the latitude of the second point.
	Latitude Mask = 1 << (iota + 6)
	// Longitude requests the longitude of the second point.
	Longitude
	// Azimuth requests the azimuths at both ends.
	Azimuth
	// Distance requests the distance between the points.
	Distance
	// Area requests the area differential between the geodesic and the equator.
	Area
)

// Has reports whether every bit of f is set in m.
func (m Mask) Has(f Mask) bool {
	return m&f == f
}
