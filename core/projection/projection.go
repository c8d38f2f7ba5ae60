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

// Transforms between Plate Carrée geographic coordinates and image pixel
// coordinates, plus a km->pixel scale conversion. All functions here are pure
// and safe to call from any number of goroutines.
package projection

import "math"

// MoonRadiusKm - Mean radius of the Moon in km
const MoonRadiusKm = 1737.4

// Origin - which image row pixel y=0 refers to. Follows the common image
// display convention: "upper" means [0, 0] is the top-left corner of the
// image, "lower" means it's the bottom-left.
type Origin int

const (
	// OriginUpper - pixel row 0 is the MAXIMUM geographic y (image top)
	OriginUpper Origin = iota

	// OriginLower - pixel row 0 is the MINIMUM geographic y (image bottom)
	OriginLower
)

// CoordLimits - geographic extent (x_min, x_max, y_min, y_max) covered by an
// image. Callers must ensure XMin < XMax and YMin < YMax; a zero-width range
// makes the transforms divide by zero, giving ±Inf/NaN per IEEE-754 rules.
type CoordLimits struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// ImageDims - width and height of an image, in pixels
type ImageDims struct {
	Width  int
	Height int
}

// CoordToPixel converts a geographic x/y to a pixel location. The input is
// not required to lie within lim - coordinates outside it extrapolate to
// pixel positions outside the image, which is intentional. No rounding or
// clamping happens here, callers clamp if they need to.
func CoordToPixel(cx float64, cy float64, lim CoordLimits, dims ImageDims, origin Origin) (float64, float64) {
	x := float64(dims.Width) * (cx - lim.XMin) / (lim.XMax - lim.XMin)

	var y float64
	if origin == OriginLower {
		y = float64(dims.Height) * (cy - lim.YMin) / (lim.YMax - lim.YMin)
	} else {
		y = float64(dims.Height) * (lim.YMax - cy) / (lim.YMax - lim.YMin)
	}

	return x, y
}

// PixelToCoord converts a pixel location back to geographic x/y. Exact
// algebraic inverse of CoordToPixel, so round-tripping returns the original
// coordinate up to float rounding. Pixel positions outside the image are
// allowed and extrapolate.
func PixelToCoord(x float64, y float64, lim CoordLimits, dims ImageDims, origin Origin) (float64, float64) {
	cx := (x/float64(dims.Width))*(lim.XMax-lim.XMin) + lim.XMin

	var cy float64
	if origin == OriginLower {
		cy = (y/float64(dims.Height))*(lim.YMax-lim.YMin) + lim.YMin
	} else {
		cy = lim.YMax - (y/float64(dims.Height))*(lim.YMax-lim.YMin)
	}

	return cx, cy
}

// CoordsToPixels is the element-wise form of CoordToPixel for bulk
// coordinate sets (eg every crater in a catalogue tile). Same formula as the
// scalar version, applied in a single pass. cx and cy must be equal length.
func CoordsToPixels(cx []float64, cy []float64, lim CoordLimits, dims ImageDims, origin Origin) ([]float64, []float64) {
	x := make([]float64, len(cx))
	y := make([]float64, len(cy))

	for c := range cx {
		x[c], y[c] = CoordToPixel(cx[c], cy[c], lim, dims, origin)
	}

	return x, y
}

// PixelsToCoords is the element-wise form of PixelToCoord. x and y must be
// equal length.
func PixelsToCoords(x []float64, y []float64, lim CoordLimits, dims ImageDims, origin Origin) ([]float64, []float64) {
	cx := make([]float64, len(x))
	cy := make([]float64, len(y))

	for c := range x {
		cx[c], cy[c] = PixelToCoord(x[c], y[c], lim, dims, origin)
	}

	return cx, cy
}

// KmToPixelScale returns the conversion factor from km to pixels (pix/km)
// for an image whose height spans latExtent degrees of latitude on a world
// of radius worldRadius km. Uses the arc length relation km = radius *
// radians, the 180/pi factor keeps latExtent in degrees. distortionScale is
// a 0..1 factor compensating projection distortion, pass 1 for none.
//
// latExtent of zero divides to +Inf - caller precondition, not checked here.
func KmToPixelScale(imgHeight float64, latExtent float64, distortionScale float64, worldRadius float64) float64 {
	return (180.0 / math.Pi) * imgHeight * distortionScale / latExtent / worldRadius
}

// KmToPixelScaleMoon - KmToPixelScale with no distortion compensation on the
// Moon, the common case in this pipeline
func KmToPixelScaleMoon(imgHeight float64, latExtent float64) float64 {
	return KmToPixelScale(imgHeight, latExtent, 1.0, MoonRadiusKm)
}
