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

// Adapter between crater image/mask datasets on disk (or S3) and a training
// loop. A dataset root contains a data_rec.json manifest, one {name}.png
// image per record and a matching mask/{name}.png crater mask.
package dataset

import (
	"fmt"
	"image"
	"path"
	"sort"

	"github.com/craterml/core/core/fileaccess"
	"github.com/craterml/core/core/logger"
	"github.com/craterml/core/core/utils"
)

// Transform - caller-supplied image transform applied to both the image and
// mask of a pair as it's served, eg a resize to the training input size.
// Injected as a plain function so callers can compose whatever they want.
type Transform func(image.Image) image.Image

// ImageMaskPair - paths of one image and its crater mask, relative to the
// dataset root
type ImageMaskPair struct {
	Name      string
	ImagePath string
	MaskPath  string
}

// CraterPairs - a crater dataset opened for reading. Immutable once made,
// so safe to read from multiple goroutines.
type CraterPairs struct {
	fs        fileaccess.FileAccess
	root      string
	pairs     []ImageMaskPair
	transform Transform
}

// MakeCraterPairs - opens the dataset at root, reading the manifest and
// resolving each record to its image/mask pair. Records missing either file
// are dropped - datasets are regenerated tile-by-tile so partial ones are
// normal, not an error. Drops are only visible at debug log level.
// transform may be nil. Pairs come back sorted by record name, so
// enumeration order is stable within a run.
func MakeCraterPairs(fs fileaccess.FileAccess, root string, transform Transform, iLog logger.ILogger) (*CraterPairs, error) {
	records, err := ReadManifest(fs, root)
	if err != nil {
		return nil, err
	}

	pairs := []ImageMaskPair{}
	seen := map[string]bool{}

	for _, rec := range records {
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true

		pair := ImageMaskPair{
			Name:      rec.Name,
			ImagePath: rec.Name + ".png",
			MaskPath:  path.Join("mask", rec.Name+".png"),
		}

		imgExists, err := fs.ObjectExists(root, pair.ImagePath)
		if err != nil {
			return nil, err
		}
		maskExists, err := fs.ObjectExists(root, pair.MaskPath)
		if err != nil {
			return nil, err
		}

		if !imgExists || !maskExists {
			iLog.Debugf("Dropping record %v: image exists=%v, mask exists=%v", rec.Name, imgExists, maskExists)
			continue
		}

		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })

	return &CraterPairs{
		fs:        fs,
		root:      root,
		pairs:     pairs,
		transform: transform,
	}, nil
}

// Count - how many usable image/mask pairs the dataset has
func (c *CraterPairs) Count() int {
	return len(c.pairs)
}

// Pairs - the resolved pairs, sorted by record name
func (c *CraterPairs) Pairs() []ImageMaskPair {
	return c.pairs
}

// Get - loads pair idx, applying the transform (if any) to both images
func (c *CraterPairs) Get(idx int) (image.Image, image.Image, error) {
	if idx < 0 || idx >= len(c.pairs) {
		return nil, nil, fmt.Errorf("pair index %v out of range, have %v pairs", idx, len(c.pairs))
	}

	pair := c.pairs[idx]

	img, err := c.readImage(pair.ImagePath)
	if err != nil {
		return nil, nil, err
	}

	mask, err := c.readImage(pair.MaskPath)
	if err != nil {
		return nil, nil, err
	}

	if c.transform != nil {
		img = c.transform(img)
		mask = c.transform(mask)
	}

	return img, mask, nil
}

func (c *CraterPairs) readImage(filePath string) (image.Image, error) {
	data, err := c.fs.ReadObject(c.root, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", filePath, err)
	}

	img, err := utils.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", filePath, err)
	}

	return img, nil
}
