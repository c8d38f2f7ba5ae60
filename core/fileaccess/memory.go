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
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
)

var errMemNotFound = errors.New("object not found")

// In-memory file access implementation for unit tests. Keys are root+"/"+path
// so multiple roots can coexist in one instance.
type MemoryAccess struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func MakeMemoryAccess() *MemoryAccess {
	return &MemoryAccess{objects: map[string][]byte{}}
}

func (m *MemoryAccess) ListObjects(root string, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []string{}
	for key := range m.objects {
		if strings.HasPrefix(key, root+"/"+prefix) {
			result = append(result, strings.TrimPrefix(key, root+"/"))
		}
	}

	// Map ordering is random, tests need stable listings
	sort.Strings(result)
	return result, nil
}

func (m *MemoryAccess) ObjectExists(root string, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[root+"/"+path]
	return ok, nil
}

func (m *MemoryAccess) ReadObject(root string, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.objects[root+"/"+path]
	if !ok {
		return nil, errMemNotFound
	}
	return data, nil
}

func (m *MemoryAccess) WriteObject(root string, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[root+"/"+path] = data
	return nil
}

func (m *MemoryAccess) ReadJSON(root string, path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := m.ReadObject(root, path)
	if err != nil {
		if emptyIfNotFound && m.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (m *MemoryAccess) WriteJSON(root string, path string, itemsPtr interface{}) error {
	fileData, err := json.MarshalIndent(itemsPtr, "", "    ")
	if err != nil {
		return err
	}

	return m.WriteObject(root, path, fileData)
}

func (m *MemoryAccess) DeleteObject(root string, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := root + "/" + path
	if _, ok := m.objects[key]; !ok {
		return errMemNotFound
	}
	delete(m.objects, key)
	return nil
}

func (m *MemoryAccess) IsNotFoundError(err error) bool {
	return errors.Is(err, errMemNotFound)
}
