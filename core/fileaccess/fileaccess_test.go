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

package fileaccess

import (
	"fmt"
	"os"
)

type testRecord struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Shared between implementations - local file system and in-memory access
// must behave identically, so both run this and must print the same output
func runTest(fs FileAccess, root string) {
	fmt.Printf("JSON write: %v\n", fs.WriteJSON(root, "recs/data_rec.json", []testRecord{{Name: "0", Value: 4}}))

	exists, err := fs.ObjectExists(root, "recs/0.png")
	fmt.Printf("Exists before: %v|%v\n", exists, err)

	fmt.Printf("Binary write: %v\n", fs.WriteObject(root, "recs/0.png", []byte{137, 80, 78, 71}))

	exists, err = fs.ObjectExists(root, "recs/0.png")
	fmt.Printf("Exists after: %v|%v\n", exists, err)

	var recs []testRecord
	err = fs.ReadJSON(root, "recs/data_rec.json", &recs, false)
	fmt.Printf("JSON read: %v, %v\n", err, recs)

	data, err := fs.ReadObject(root, "recs/0.png")
	fmt.Printf("Binary read: %v, %v\n", err, data)

	// Missing files must come back as a detectable not-found error
	_, err = fs.ReadObject(root, "recs/99.png")
	fmt.Printf("Read missing is not-found: %v\n", fs.IsNotFoundError(err))

	// ... and emptyIfNotFound should swallow them for JSON
	var empty []testRecord
	err = fs.ReadJSON(root, "recs/nonexistant.json", &empty, true)
	fmt.Printf("JSON read missing ignored: %v, %v\n", err, empty)

	listing, err := fs.ListObjects(root, "recs/")
	fmt.Printf("Listing: %v, %v\n", err, listing)

	fmt.Printf("Delete: %v\n", fs.DeleteObject(root, "recs/0.png"))

	listing, err = fs.ListObjects(root, "recs/")
	fmt.Printf("Listing after delete: %v, %v\n", err, listing)
}

func Example_localFileSystem() {
	// Clear out anything a previous run left behind
	fmt.Printf("Setup: %v\n", os.RemoveAll("./test-output/"))

	runTest(&FSAccess{}, "./test-output")

	// Output:
	// Setup: <nil>
	// JSON write: <nil>
	// Exists before: false|<nil>
	// Binary write: <nil>
	// Exists after: true|<nil>
	// JSON read: <nil>, [{0 4}]
	// Binary read: <nil>, [137 80 78 71]
	// Read missing is not-found: true
	// JSON read missing ignored: <nil>, []
	// Listing: <nil>, [recs/0.png recs/data_rec.json]
	// Listing after delete: <nil>, [recs/data_rec.json]
}

func Example_memory() {
	fmt.Printf("Setup: %v\n", nil)

	runTest(MakeMemoryAccess(), "mem-bucket")

	// NOTE: output must match the local file system implementation

	// Output:
	// Setup: <nil>
	// JSON write: <nil>
	// Exists before: false|<nil>
	// Binary write: <nil>
	// Exists after: true|<nil>
	// JSON read: <nil>, [{0 4}]
	// Binary read: <nil>, [137 80 78 71]
	// Read missing is not-found: true
	// JSON read missing ignored: <nil>, []
	// Listing: <nil>, [recs/0.png recs/data_rec.json]
	// Listing after delete: <nil>, [recs/data_rec.json]
}
