/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthString(t *testing.T) {
	require.Equal(t, "12.346 km", Length(12345.6).String())
	require.Equal(t, "-12.346 km", Length(-12345.6).String())
	require.Equal(t, "42.000 m", Length(42).String())
	require.Equal(t, "50.000 cm", Length(0.5).String())
	require.Equal(t, "NaN", Length(math.NaN()).String())
}

func TestAreaString(t *testing.T) {
	require.Equal(t, "2.500 km^2", Area(2.5e6).String())
	require.Equal(t, "-2.500 km^2", Area(-2.5e6).String())
	require.Equal(t, "999.000 m^2", Area(999).String())
	require.Equal(t, "2500.000 cm^2", Area(0.25).String())
	require.Equal(t, "NaN", Area(math.NaN()).String())
}
