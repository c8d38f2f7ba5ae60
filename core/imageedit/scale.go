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

package imageedit

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleImage - scales an image to newWidth, preserving its aspect ratio
func ScaleImage(img image.Image, newWidth int) image.Image {
	bounds := img.Bounds()

	w := newWidth
	h := int(float32(bounds.Dy()) / float32(bounds.Dx()) * float32(w))

	return resize(img, w, h)
}

// ResizeSquare - resizes an image to size x size pixels, ignoring aspect
// ratio. Training inputs and masks all get squashed to one fixed size, so
// this is the stock dataset transform.
func ResizeSquare(img image.Image, size int) image.Image {
	return resize(img, size, size)
}

func resize(img image.Image, w int, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)

	return dst
}
