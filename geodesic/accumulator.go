/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import "math"

// Accumulator is a running sum kept as a major term s and a compensation term t, which together
// carry roughly twice the precision of a float64. The zero value is a sum of zero.
//
// Accumulator is a plain value: assigning it copies the sum.
type Accumulator struct {
	s, t float64
}

// NewAccumulator returns an accumulator holding y.
func NewAccumulator(y float64) Accumulator {
	return Accumulator{s: y}
}

// Set replaces the sum with y.
func (a *Accumulator) Set(y float64) {
	a.s, a.t = y, 0
}

// Add adds y to the sum.
func (a *Accumulator) Add(y float64) {
	var u float64
	y, u = twoSum(y, a.t)
	a.s, a.t = twoSum(y, a.s)
	// The sum is exact when s is zero, so the leftover error becomes the sum itself.
	if a.s == 0 {
		a.s = u
	} else {
		a.t += u
	}
}

// Sum returns the value of the sum.
func (a Accumulator) Sum() float64 {
	return a.s + a.t
}

// SumWith returns the value the sum would have after adding y. The accumulator is unchanged.
func (a Accumulator) SumWith(y float64) float64 {
	a.Add(y)
	return a.Sum()
}

// Negate flips the sign of the sum.
func (a *Accumulator) Negate() {
	a.s, a.t = -a.s, -a.t
}

// Remainder reduces the sum to [-y/2, y/2].
func (a *Accumulator) Remainder(y float64) {
	a.s = math.Remainder(a.s, y)
	a.Add(0)
}
