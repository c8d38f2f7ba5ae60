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

package dataset

import (
	"fmt"

	"github.com/craterml/core/core/fileaccess"
)

// ManifestFileName - name of the record manifest at a dataset root
const ManifestFileName = "data_rec.json"

// ManifestRecord - one record of the dataset manifest. The manifest carries
// more fields per record (crater counts etc) but the name is all we need to
// locate the image/mask files, so that's all we parse.
type ManifestRecord struct {
	Name string `json:"name"`
}

// ReadManifest - reads the manifest at a dataset root. A missing or
// unparseable manifest is an error, datasets without one are broken.
func ReadManifest(fs fileaccess.FileAccess, root string) ([]ManifestRecord, error) {
	records := []ManifestRecord{}
	err := fs.ReadJSON(root, ManifestFileName, &records, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset manifest %v in %v: %w", ManifestFileName, root, err)
	}

	return records, nil
}
