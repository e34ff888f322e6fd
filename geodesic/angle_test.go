/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geodesic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngNormalize(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{179, 179},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{539, 179},
		{540, -180},
		{-540, -180},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, AngNormalize(tc.in), "AngNormalize(%v)", tc.in)
	}
}

func TestAngDiff(t *testing.T) {
	tests := []struct {
		x, y, diff float64
	}{
		{10, 20, 10},
		{20, 10, -10},
		{179, -179, 2},
		{-179, 179, -2},
		{0, 180, 180},
		{180, 0, 180},
		{180, -180, 0},
		{10, 370, 0},
		{-90, 90, 180},
	}
	for _, tc := range tests {
		require.Equal(t, tc.diff, AngDiff(tc.x, tc.y), "AngDiff(%v, %v)", tc.x, tc.y)
	}
}

func TestTransit(t *testing.T) {
	tests := []struct {
		lon1, lon2 float64
		cross      int
	}{
		{179, -179, 1},
		{-179, 179, -1},
		{10, 20, 0},
		{-10, 10, 0},
		{10, -10, 0},
		{170, 180, 1},
		{-180, 170, -1},
		{-180, -170, 0},
		// Extended longitudes are normalized first.
		{539, 181, 1},
		{0, 90, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.cross, Transit(tc.lon1, tc.lon2), "Transit(%v, %v)", tc.lon1, tc.lon2)
	}
}

func TestTransitDirect(t *testing.T) {
	tests := []struct {
		lon1, lon2 float64
		cross      int
	}{
		{0, 10, 0},
		{179, 181, 1},
		{-179, -181, -1},
		{-180, -180.5, -1},
		{-180, -179.5, 0},
		{0, -0.1, 0},
		// Once around the equator eastward and westward.
		{0, 360, 1},
		{10, -350, -1},
		{-170, 560, 2},
	}
	for _, tc := range tests {
		require.Equal(t, tc.cross, transitDirect(tc.lon1, tc.lon2),
			"transitDirect(%v, %v)", tc.lon1, tc.lon2)
	}

	// Short paths count the same as Transit on their normalized ends.
	for _, lon1 := range []float64{-180, -90, -1, 0, 1, 90, 179.5} {
		for _, d := range []float64{-179, -45, -0.5, 0, 0.5, 45, 179} {
			require.Equal(t, Transit(lon1, lon1+d), transitDirect(lon1, lon1+d),
				"lon1 %v, d %v", lon1, d)
		}
	}
}

func TestTransitClosedLoop(t *testing.T) {
	// A loop around the pole crosses the antimeridian once; a loop that does not
	// encircle it crosses an even number of times.
	around := []float64{0, 120, -120}
	sum := 0
	for i := range around {
		sum += Transit(around[i], around[(i+1)%len(around)])
	}
	require.Equal(t, 1, sum)

	back := []float64{170, -170, -175, 175}
	sum = 0
	for i := range back {
		sum += Transit(back[i], back[(i+1)%len(back)])
	}
	require.Equal(t, 0, sum)
}

func TestMask(t *testing.T) {
	m := Latitude | Longitude | Distance
	require.True(t, m.Has(Latitude))
	require.True(t, m.Has(Latitude|Distance))
	require.False(t, m.Has(Area))
	require.False(t, m.Has(Distance|Area))
	require.True(t, m.Has(None))
}
