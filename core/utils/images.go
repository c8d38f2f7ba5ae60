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

// Small image reading/writing helpers shared by the dataset code, command
// line tools and tests
package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	// Dataset images are PNG, registering JPEG too costs nothing and some
	// raw map tiles come as JPEG
	_ "image/jpeg"
)

// DecodeImage - decodes an image from raw file bytes, any registered format
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// ReadImageFile - reads and decodes an image from a local path
func ReadImageFile(path string) (image.Image, error) {
	imgbytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeImage(imgbytes)
}

// EncodePNG - encodes an image as PNG file bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNGImageFile - writes an image to a local path, appending .png if
// the path doesn't end in it already
func WritePNGImageFile(pathPrefix string, img image.Image) error {
	fileName := pathPrefix
	if !strings.HasSuffix(fileName, ".png") {
		fileName += ".png"
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// ImagesSizeEqual - compares the bounds of 2 images, returns an error
// describing the difference if they don't match
func ImagesSizeEqual(a image.Image, b image.Image) error {
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		return fmt.Errorf("image bounds not equal: %+v, %+v", a.Bounds(), b.Bounds())
	}
	return nil
}
