/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// Geo represents geo-spatial data. Coordinates are (longitude, latitude) in degrees, as in
// GeoJSON.
type Geo struct {
	geom.T
}

// MarshalBinary marshals to little endian WKB.
func (v Geo) MarshalBinary() ([]byte, error) {
	if v.T == nil {
		return nil, errors.Errorf("Cannot marshal empty geometry")
	}
	return wkb.Marshal(v.T, binary.LittleEndian)
}

// UnmarshalBinary unmarshals the data from WKB.
func (v *Geo) UnmarshalBinary(data []byte) error {
	w, err := wkb.Unmarshal(data)
	if err != nil {
		return errors.Wrapf(err, "while parsing WKB")
	}
	v.T = w
	return nil
}

// MarshalText marshals to GeoJSON.
func (v Geo) MarshalText() ([]byte, error) {
	if v.T == nil {
		return nil, errors.Errorf("Cannot marshal empty geometry")
	}
	return geojson.Marshal(v.T)
}

// UnmarshalText parses a GeoJSON geometry. Single quotes are accepted in place of double quotes.
func (v *Geo) UnmarshalText(text []byte) error {
	var g geom.T
	text = bytes.ReplaceAll(text, []byte("'"), []byte("\""))
	if err := geojson.Unmarshal(text, &g); err != nil {
		return errors.Wrapf(err, "while parsing GeoJSON")
	}
	if g == nil {
		return errors.Errorf("GeoJSON does not contain a geometry")
	}
	v.T = g
	return nil
}

func (v Geo) String() string {
	if v.T == nil {
		return "<empty geodata>"
	}
	return "<geodata>"
}
