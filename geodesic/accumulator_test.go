/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccumulatorCompensation(t *testing.T) {
	vals := []float64{1e16, 1.0, -1e16}

	var naive float64
	var acc Accumulator
	for _, v := range vals {
		naive += v
		acc.Add(v)
	}
	require.Equal(t, 0.0, naive)
	require.Equal(t, 1.0, acc.Sum())
}

func TestAccumulatorManySmallTerms(t *testing.T) {
	acc := NewAccumulator(1)
	naive := 1.0
	for i := 0; i < 1000000; i++ {
		acc.Add(1e-16)
		naive += 1e-16
	}
	require.Equal(t, 1.0, naive)
	require.InDelta(t, 1+1e-10, acc.Sum(), 1e-15)
}

func TestAccumulatorSet(t *testing.T) {
	acc := NewAccumulator(1e16)
	acc.Add(1)
	acc.Set(3)
	require.Equal(t, 3.0, acc.Sum())
	acc.Add(-1e16)
	acc.Add(1e16)
	require.Equal(t, 3.0, acc.Sum())
}

func TestAccumulatorSumWith(t *testing.T) {
	acc := NewAccumulator(1e16)
	acc.Add(1)
	require.Equal(t, 1.0, acc.SumWith(-1e16))
	require.Equal(t, 1e16, acc.Sum())
	acc.Add(-1e16)
	require.Equal(t, 1.0, acc.Sum())
}

func TestAccumulatorNegate(t *testing.T) {
	acc := NewAccumulator(1e16)
	acc.Add(1)
	acc.Negate()
	acc.Add(1e16)
	require.Equal(t, -1.0, acc.Sum())
}

func TestAccumulatorRemainder(t *testing.T) {
	acc := NewAccumulator(7)
	acc.Remainder(5)
	require.Equal(t, 2.0, acc.Sum())

	// The compensation term survives the reduction.
	acc = NewAccumulator(1e16)
	acc.Add(1)
	acc.Remainder(3e15)
	require.Equal(t, 1e15+1, acc.Sum())
}

func TestAccumulatorIsValue(t *testing.T) {
	a := NewAccumulator(10)
	b := a
	b.Add(5)
	require.Equal(t, 10.0, a.Sum())
	require.Equal(t, 15.0, b.Sum())
}

func TestAccumulatorNonFinite(t *testing.T) {
	acc := NewAccumulator(1)
	acc.Add(math.NaN())
	acc.Add(1)
	require.True(t, math.IsNaN(acc.Sum()))

	acc.Set(1)
	acc.Add(math.Inf(1))
	s := acc.Sum()
	require.True(t, math.IsNaN(s) || math.IsInf(s, 0), "got %v", s)
}
