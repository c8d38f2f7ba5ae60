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

package projection

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func Example_coordToPixel() {
	lim := CoordLimits{XMin: -180, XMax: 180, YMin: -90, YMax: 90}
	dims := ImageDims{Width: 512, Height: 256}

	x, y := CoordToPixel(0, 0, lim, dims, OriginUpper)
	fmt.Printf("%v %v\n", x, y)

	// Corners, upper origin: (XMin, YMax) is top-left, (XMax, YMin) is bottom-right
	x, y = CoordToPixel(-180, 90, lim, dims, OriginUpper)
	fmt.Printf("%v %v\n", x, y)
	x, y = CoordToPixel(180, -90, lim, dims, OriginUpper)
	fmt.Printf("%v %v\n", x, y)

	// Lower origin flips y only
	x, y = CoordToPixel(-180, 90, lim, dims, OriginLower)
	fmt.Printf("%v %v\n", x, y)

	// Output:
	// 256 128
	// 0 0
	// 512 256
	// 0 256
}

func Example_kmToPixelScale() {
	// A 3000 pixel tall image spanning 120 degrees of lunar latitude
	fmt.Printf("%.6f\n", KmToPixelScaleMoon(3000, 120))

	// Output:
	// 0.824447
}

func TestRoundTrip(t *testing.T) {
	rand.Seed(42)

	lim := CoordLimits{XMin: -180, XMax: 180, YMin: -60, YMax: 60}
	dims := ImageDims{Width: 2048, Height: 512}

	for _, origin := range []Origin{OriginUpper, OriginLower} {
		for i := 0; i < 1000; i++ {
			// Allow coords outside the limits too, extrapolation must round-trip
			cx := (rand.Float64() - 0.5) * 800
			cy := (rand.Float64() - 0.5) * 400

			x, y := CoordToPixel(cx, cy, lim, dims, origin)
			gotX, gotY := PixelToCoord(x, y, lim, dims, origin)

			if math.Abs(gotX-cx) > 1e-9 || math.Abs(gotY-cy) > 1e-9 {
				t.Errorf("Round trip failed for origin %v: (%v, %v) -> (%v, %v) -> (%v, %v)", origin, cx, cy, x, y, gotX, gotY)
			}
		}
	}
}

func TestAffine(t *testing.T) {
	lim := CoordLimits{XMin: 10, XMax: 50, YMin: -20, YMax: 20}
	dims := ImageDims{Width: 400, Height: 800}

	// Pixel x should be affine in cx: x(cx) = scale*cx + offset, so equal
	// coordinate steps must give equal pixel steps
	x0, _ := CoordToPixel(12, 0, lim, dims, OriginUpper)
	x1, _ := CoordToPixel(17, 0, lim, dims, OriginUpper)
	x2, _ := CoordToPixel(22, 0, lim, dims, OriginUpper)

	if math.Abs((x1-x0)-(x2-x1)) > 1e-9 {
		t.Errorf("x not affine in cx: steps %v vs %v", x1-x0, x2-x1)
	}

	// Expected scale is Width/(XMax-XMin) = 10 pixels per coordinate unit
	if math.Abs((x1-x0)-50) > 1e-9 {
		t.Errorf("Unexpected x scale: got %v, want 50", x1-x0)
	}

	_, y0 := CoordToPixel(0, -5, lim, dims, OriginUpper)
	_, y1 := CoordToPixel(0, 5, lim, dims, OriginUpper)

	// Upper origin: increasing cy moves up the image, Height/(YMax-YMin) = 20 pix/unit
	if math.Abs((y0-y1)-200) > 1e-9 {
		t.Errorf("Unexpected y scale: got %v, want 200", y0-y1)
	}
}

func TestOriginSymmetry(t *testing.T) {
	lim := CoordLimits{XMin: -180, XMax: 180, YMin: -90, YMax: 90}
	dims := ImageDims{Width: 512, Height: 300}

	for _, cy := range []float64{-90, -33.7, 0, 12.5, 90, 120} {
		_, yUp := CoordToPixel(45, cy, lim, dims, OriginUpper)
		_, yLow := CoordToPixel(45, cy, lim, dims, OriginLower)

		if math.Abs(yUp+yLow-float64(dims.Height)) > 1e-9 {
			t.Errorf("Origin symmetry broken at cy=%v: %v + %v != %v", cy, yUp, yLow, dims.Height)
		}
	}
}

func TestKmToPixelScaleProportional(t *testing.T) {
	// Doubling the image height doubles pix/km
	one := KmToPixelScale(1500, 45, 1.0, MoonRadiusKm)
	two := KmToPixelScale(3000, 45, 1.0, MoonRadiusKm)

	if math.Abs(two-2*one) > 1e-12 {
		t.Errorf("Scale not proportional to image height: %v vs 2*%v", two, one)
	}

	// Distortion compensation scales linearly too
	half := KmToPixelScale(1500, 45, 0.5, MoonRadiusKm)
	if math.Abs(half-0.5*one) > 1e-12 {
		t.Errorf("Scale not proportional to distortion factor: %v vs 0.5*%v", half, one)
	}
}

func TestDegenerateLimits(t *testing.T) {
	dims := ImageDims{Width: 100, Height: 100}

	// Zero-width coordinate ranges divide by zero. IEEE-754 takes over and
	// the result is ±Inf (or NaN for 0/0), never a panic.
	lim := CoordLimits{XMin: 5, XMax: 5, YMin: -10, YMax: -10}

	x, y := CoordToPixel(7, 3, lim, dims, OriginUpper)
	if !math.IsInf(x, 1) {
		t.Errorf("Expected x=+Inf for degenerate x range, got %v", x)
	}
	if !math.IsInf(y, -1) {
		t.Errorf("Expected y=-Inf for degenerate y range, got %v", y)
	}

	// Coordinate sitting exactly on the collapsed range is 0/0
	x, _ = CoordToPixel(5, 3, lim, dims, OriginUpper)
	if !math.IsNaN(x) {
		t.Errorf("Expected x=NaN at collapsed range, got %v", x)
	}

	if scale := KmToPixelScale(100, 0, 1.0, MoonRadiusKm); !math.IsInf(scale, 1) {
		t.Errorf("Expected +Inf scale for zero lat extent, got %v", scale)
	}
}

func TestSliceMatchesScalar(t *testing.T) {
	lim := CoordLimits{XMin: -30, XMax: 60, YMin: -45, YMax: 45}
	dims := ImageDims{Width: 1024, Height: 1024}

	cx := []float64{-30, -1.25, 0, 17.2, 60, 95.5}
	cy := []float64{45, 12.1, 0, -8.88, -45, -60}

	for _, origin := range []Origin{OriginUpper, OriginLower} {
		x, y := CoordsToPixels(cx, cy, lim, dims, origin)

		if len(x) != len(cx) || len(y) != len(cy) {
			t.Fatalf("Slice output length mismatch: %v, %v", len(x), len(y))
		}

		for c := range cx {
			wantX, wantY := CoordToPixel(cx[c], cy[c], lim, dims, origin)
			if x[c] != wantX || y[c] != wantY {
				t.Errorf("Element %v differs from scalar call: (%v, %v) vs (%v, %v)", c, x[c], y[c], wantX, wantY)
			}
		}

		backX, backY := PixelsToCoords(x, y, lim, dims, origin)
		for c := range cx {
			if math.Abs(backX[c]-cx[c]) > 1e-9 || math.Abs(backY[c]-cy[c]) > 1e-9 {
				t.Errorf("Slice round trip failed at %v: (%v, %v)", c, backX[c], backY[c])
			}
		}
	}
}
