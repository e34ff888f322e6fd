/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestParse(t *testing.T) {
	array := []string{
		`{"type":"Point","coordinates":[1,2]}`,
		`{"type":"LineString","coordinates":[[1,2],[3,4],[5,6]]}`,
		`{"type":"MultiLineString","coordinates":[[[1,2,3],[4,5,6],[7,8,9],[1,2,3]]]}`,
	}
	for _, v := range array {
		var g Geo
		require.NoError(t, g.UnmarshalText([]byte(v)), "parsing %s", v)

		got, err := g.MarshalText()
		require.NoError(t, err)
		require.Equal(t, v, string(got))

		wkb, err := g.MarshalBinary()
		require.NoError(t, err)
		var bg Geo
		require.NoError(t, bg.UnmarshalBinary(wkb))
		got, err = bg.MarshalText()
		require.NoError(t, err)
		require.Equal(t, v, string(got))
	}
}

func TestParseSingleQuotes(t *testing.T) {
	var g Geo
	require.NoError(t, g.UnmarshalText([]byte(`{'type':'Point','coordinates':[1,2]}`)))
	require.IsType(t, &geom.Point{}, g.T)
	require.Equal(t, geom.Coord{1, 2}, g.T.(*geom.Point).Coords())
}

func TestParseGeoJsonErrors(t *testing.T) {
	array := []string{
		`{"type":"Curve","coordinates":[1,2]}`,
		`{}`,
		`thisisntjson`,
	}
	for _, v := range array {
		var g Geo
		require.Error(t, g.UnmarshalText([]byte(v)), "parsing %s", v)
	}

	var g Geo
	require.Error(t, g.UnmarshalBinary([]byte{0x01, 0x02}))
	_, err := Geo{}.MarshalBinary()
	require.Error(t, err)
	_, err = Geo{}.MarshalText()
	require.Error(t, err)
}
