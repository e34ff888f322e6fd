/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package measure

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/planimeter/geo"
	"github.com/hypermodeinc/planimeter/geodesic"
	"github.com/hypermodeinc/planimeter/sphere"
	"github.com/hypermodeinc/planimeter/types"
	"github.com/hypermodeinc/planimeter/x"
)

// Measure is the sub-command invoked when running "planimeter measure".
var Measure x.SubCommand

type options struct {
	input    string
	format   string
	radius   float64
	polyline bool
	reverse  bool
	signed   bool
	human    bool
	running  bool
	check    bool
}

func init() {
	Measure.Cmd = &cobra.Command{
		Use:   "measure",
		Short: "Measure geodesic polygons and polylines",
		Long: `
Measure reads shapes and prints "count perimeter area" for each of them.

With --format=text every line holds "lat lon" in degrees and adds a vertex to
the current shape. A blank line or "END" closes the shape, prints the result
and starts a new one. Lines starting with # are ignored.

With --format=geojson the input is a GeoJSON geometry, Feature or
FeatureCollection, and with --format=wkb a single WKB geometry. One line is
printed per geometry.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
	Measure.EnvPrefix = "PLANIMETER"

	flag := Measure.Cmd.Flags()
	flag.StringP("input", "i", "-", "File to read shapes from. - reads from stdin.")
	flag.String("format", "text", "Input format, one of [text, geojson, wkb].")
	flag.Float64("radius", types.EarthRadiusMeters, "Radius of the earth in meters.")
	flag.BoolP("polyline", "l", false, "Treat text input as polylines: no closing edge, no area.")
	flag.BoolP("reverse", "r", false, "Count clockwise traversal as positive area.")
	flag.Bool("signed", true, "Report signed areas. Otherwise areas are in [0, earth area).")
	flag.Bool("human", false, "Print results in human readable units.")
	flag.Bool("running", false,
		"For text input, print a preview of the result before each vertex is added.")
	flag.Bool("check", false,
		"For geojson and wkb input, cross-check areas against S2 loops and warn on mismatch.")
}

func getOptions() options {
	return options{
		input:    Measure.GetStringP("input", "i", "-"),
		format:   Measure.GetStringP("format", "", "text"),
		radius:   Measure.GetFloat64P("radius", "", types.EarthRadiusMeters),
		polyline: Measure.GetBoolP("polyline", "l", false),
		reverse:  Measure.GetBoolP("reverse", "r", false),
		signed:   Measure.GetBoolP("signed", "", true),
		human:    Measure.GetBoolP("human", "", false),
		running:  Measure.GetBoolP("running", "", false),
		check:    Measure.GetBoolP("check", "", false),
	}
}

func run(w io.Writer) error {
	opt := getOptions()
	if opt.radius <= 0 {
		return errors.Errorf("Invalid radius %v. It must be positive.", opt.radius)
	}

	in := os.Stdin
	if opt.input != "-" {
		f, err := os.Open(opt.input)
		if err != nil {
			return errors.Wrapf(err, "while opening %s", opt.input)
		}
		defer func() { x.Ignore(f.Close()) }()
		in = f
	}

	earth := sphere.New(opt.radius)
	glog.V(2).Infof("Measuring %s input on a sphere of radius %v", opt.format, opt.radius)
	switch opt.format {
	case "text":
		return measureText(earth, in, w, opt)
	case "geojson", "wkb":
		data, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrapf(err, "while reading input")
		}
		return measureGeometries(earth, data, w, opt)
	default:
		return errors.Errorf("Unknown format %q", opt.format)
	}
}

// measureText reads "lat lon" lines. Shapes are separated by blank lines or END.
func measureText[E geodesic.Engine](earth E, r io.Reader, w io.Writer, opt options) error {
	p := geodesic.NewPolygonArea(earth, opt.polyline)
	out := printer{w: w, human: opt.human}
	flush := func() error {
		if p.Count() == 0 {
			return nil
		}
		err := out.print(p.Compute(opt.reverse, opt.signed), "")
		p.Clear()
		return err
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "" || strings.EqualFold(line, "END"):
			if err := flush(); err != nil {
				return err
			}
			continue
		}

		lat, lon, err := parsePoint(line)
		if err != nil {
			glog.Warningf("Skipping line %d: %v", lineNum, err)
			continue
		}
		if opt.running {
			if err := out.print(p.TestPoint(lat, lon, opt.reverse, opt.signed), "~ "); err != nil {
				return err
			}
		}
		p.AddPoint(lat, lon)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "while reading line %d", lineNum+1)
	}
	return flush()
}

func parsePoint(line string) (lat, lon float64, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("Expected \"lat lon\", got %q", line)
	}
	if lat, err = cast.ToFloat64E(fields[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "invalid latitude")
	}
	if lon, err = cast.ToFloat64E(fields[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "invalid longitude")
	}
	if lat < -90 || lat > 90 {
		return 0, 0, errors.Errorf("Latitude %v is not in [-90, 90]", lat)
	}
	return lat, lon, nil
}

func measureGeometries[E geodesic.Engine](earth E, data []byte, w io.Writer, opt options) error {
	var geos []types.Geo
	if opt.format == "wkb" {
		var g types.Geo
		if err := g.UnmarshalBinary(data); err != nil {
			return err
		}
		geos = append(geos, g)
	} else {
		var err error
		if geos, err = geo.ParseGeoJSON(data); err != nil {
			return err
		}
	}

	out := printer{w: w, human: opt.human}
	for i, g := range geos {
		m, err := geo.Measure(earth, g)
		if err != nil {
			return errors.Wrapf(err, "while measuring geometry %d", i)
		}
		if opt.check {
			if err := checkArea(g, m, earth.MajorRadius()); err != nil {
				return errors.Wrapf(err, "while checking geometry %d", i)
			}
		}
		if err := out.printMeasurement(m); err != nil {
			return err
		}
	}
	return nil
}

// checkTolerance is the relative difference above which the two area computations disagree.
const checkTolerance = 1e-6

func checkArea(g types.Geo, m geo.Measurement, radius float64) error {
	ref, err := geo.SphericalArea(g, radius)
	if err != nil {
		return err
	}
	diff := math.Abs(float64(m.Area - ref))
	if diff > checkTolerance*math.Max(math.Abs(float64(ref)), 1) {
		glog.Warningf("Area of %T is %v but S2 loops give %v. Check the rings for "+
			"self-intersections.", g.T, m.Area, ref)
		return nil
	}
	glog.V(2).Infof("Area of %T agrees with S2 loops to within %v", g.T, types.Area(diff))
	return nil
}

type printer struct {
	w     io.Writer
	human bool
}

func (p printer) print(res geodesic.Result, prefix string) error {
	var err error
	// Polylines have no area.
	noArea := math.IsNaN(res.Area)
	switch {
	case p.human && noArea:
		_, err = fmt.Fprintf(p.w, "%s%s vertices, length %v\n", prefix,
			humanize.Comma(int64(res.Count)), types.Length(res.Perimeter))
	case p.human:
		_, err = fmt.Fprintf(p.w, "%s%s vertices, perimeter %v, area %v\n", prefix,
			humanize.Comma(int64(res.Count)), types.Length(res.Perimeter), types.Area(res.Area))
	case noArea:
		_, err = fmt.Fprintf(p.w, "%s%d %.8f\n", prefix, res.Count, res.Perimeter)
	default:
		_, err = fmt.Fprintf(p.w, "%s%d %.8f %.1f\n", prefix, res.Count, res.Perimeter, res.Area)
	}
	return err
}

func (p printer) printMeasurement(m geo.Measurement) error {
	var err error
	if p.human {
		_, err = fmt.Fprintf(p.w, "%s vertices, perimeter %v, area %v\n",
			humanize.Comma(int64(m.Vertices)), m.Perimeter, m.Area)
	} else {
		_, err = fmt.Fprintf(p.w, "%d %.8f %.1f\n", m.Vertices, float64(m.Perimeter), float64(m.Area))
	}
	return err
}
