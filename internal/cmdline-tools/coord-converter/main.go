// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/craterml/core/core/projection"
)

// Converts between geographic lon/lat and image pixel coordinates for a
// Plate Carrée map tile, or prints the km->pixel scale factor for it.
// Coordinate values are comma separated lists so whole crater catalogues
// can be pushed through in one call.

func main() {
	var argMode = flag.String("mode", "coord2pix", "Conversion to run: coord2pix, pix2coord, km2pix")
	var argLimits = flag.String("limits", "-180,180,-90,90", "Coordinate limits of image: xmin,xmax,ymin,ymax")
	var argDims = flag.String("dims", "", "Image dimensions in pixels: width,height")
	var argOrigin = flag.String("origin", "upper", "Image origin convention: upper or lower")
	var argX = flag.String("x", "", "Comma separated x values (geographic or pixel, depending on mode)")
	var argY = flag.String("y", "", "Comma separated y values")
	var argLatExtent = flag.Float64("lat-extent", 0, "Latitude extent in degrees (km2pix mode)")
	var argDistortion = flag.Float64("dc", 1.0, "Distortion compensation factor 0..1 (km2pix mode)")
	var argRadius = flag.Float64("radius", projection.MoonRadiusKm, "World radius in km (km2pix mode)")

	flag.Parse()

	dims := parseDims(*argDims)

	if *argMode == "km2pix" {
		if *argLatExtent == 0 {
			log.Fatalln("lat-extent not set")
		}

		fmt.Printf("%v pix/km\n", projection.KmToPixelScale(float64(dims.Height), *argLatExtent, *argDistortion, *argRadius))
		return
	}

	lim := parseLimits(*argLimits)
	origin := parseOrigin(*argOrigin)

	xs := parseFloatList(*argX, "x")
	ys := parseFloatList(*argY, "y")
	if len(xs) != len(ys) {
		log.Fatalf("Got %v x values but %v y values", len(xs), len(ys))
	}
	if len(xs) <= 0 {
		log.Fatalln("No coordinates given")
	}

	switch *argMode {
	case "coord2pix":
		outX, outY := projection.CoordsToPixels(xs, ys, lim, dims, origin)
		printPairs(outX, outY)
	case "pix2coord":
		outX, outY := projection.PixelsToCoords(xs, ys, lim, dims, origin)
		printPairs(outX, outY)
	default:
		log.Fatalf("Unknown mode: %v", *argMode)
	}
}

func printPairs(x []float64, y []float64) {
	for c := range x {
		fmt.Printf("%v %v\n", x[c], y[c])
	}
}

func parseFloatList(list string, what string) []float64 {
	if len(list) <= 0 {
		return []float64{}
	}

	result := []float64{}
	for _, item := range strings.Split(list, ",") {
		val, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
		if err != nil {
			log.Fatalf("Failed to parse %v value: %v", what, item)
		}
		result = append(result, val)
	}
	return result
}

func parseLimits(limits string) projection.CoordLimits {
	vals := parseFloatList(limits, "limits")
	if len(vals) != 4 {
		log.Fatalf("limits expects 4 values, got %v", len(vals))
	}

	lim := projection.CoordLimits{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]}
	if lim.XMin >= lim.XMax || lim.YMin >= lim.YMax {
		log.Fatalf("Degenerate limits: %+v", lim)
	}
	return lim
}

func parseDims(dims string) projection.ImageDims {
	if len(dims) <= 0 {
		log.Fatalln("dims not set")
	}

	vals := strings.Split(dims, ",")
	if len(vals) != 2 {
		log.Fatalf("dims expects 2 values, got %v", len(vals))
	}

	w, errW := strconv.Atoi(strings.TrimSpace(vals[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(vals[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		log.Fatalf("Bad dims: %v", dims)
	}

	return projection.ImageDims{Width: w, Height: h}
}

func parseOrigin(origin string) projection.Origin {
	switch origin {
	case "upper":
		return projection.OriginUpper
	case "lower":
		return projection.OriginLower
	}

	log.Fatalf("Unknown origin: %v", origin)
	return projection.OriginUpper
}
