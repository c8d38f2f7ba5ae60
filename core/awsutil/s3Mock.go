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

package awsutil

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// MockS3Client - replay-style mock of the S3 API calls we use. Tests queue
// up the expected requests along with the responses to hand back, then call
// FinishTest to verify everything queued was consumed.
type MockS3Client struct {
	mutex sync.Mutex

	s3iface.S3API

	// Expected requests
	ExpListObjectsV2Input []s3.ListObjectsV2Input
	ExpHeadObjectInput    []s3.HeadObjectInput
	ExpGetObjectInput     []s3.GetObjectInput

	// Responses replayed as each request comes in. A nil response makes the
	// call return the queued error instead.
	QueuedListObjectsV2Output []*s3.ListObjectsV2Output
	QueuedHeadObjectOutput    []*s3.HeadObjectOutput
	QueuedHeadObjectError     []error
	QueuedGetObjectOutput     []*s3.GetObjectOutput
	QueuedGetObjectError      []error
}

func (m *MockS3Client) ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.ExpListObjectsV2Input) <= 0 {
		return nil, errors.New("unexpected ListObjectsV2 call")
	}
	if fmt.Sprintf("%v", m.ExpListObjectsV2Input[0]) != fmt.Sprintf("%v", *input) {
		return nil, fmt.Errorf("unexpected ListObjectsV2 input: %v", *input)
	}
	m.ExpListObjectsV2Input = m.ExpListObjectsV2Input[1:]

	result := m.QueuedListObjectsV2Output[0]
	m.QueuedListObjectsV2Output = m.QueuedListObjectsV2Output[1:]
	return result, nil
}

func (m *MockS3Client) HeadObject(input *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.ExpHeadObjectInput) <= 0 {
		return nil, errors.New("unexpected HeadObject call")
	}
	if fmt.Sprintf("%v", m.ExpHeadObjectInput[0]) != fmt.Sprintf("%v", *input) {
		return nil, fmt.Errorf("unexpected HeadObject input: %v", *input)
	}
	m.ExpHeadObjectInput = m.ExpHeadObjectInput[1:]

	result := m.QueuedHeadObjectOutput[0]
	m.QueuedHeadObjectOutput = m.QueuedHeadObjectOutput[1:]

	var err error
	if len(m.QueuedHeadObjectError) > 0 {
		err = m.QueuedHeadObjectError[0]
		m.QueuedHeadObjectError = m.QueuedHeadObjectError[1:]
	}
	return result, err
}

func (m *MockS3Client) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.ExpGetObjectInput) <= 0 {
		return nil, errors.New("unexpected GetObject call")
	}
	if fmt.Sprintf("%v", m.ExpGetObjectInput[0]) != fmt.Sprintf("%v", *input) {
		return nil, fmt.Errorf("unexpected GetObject input: %v", *input)
	}
	m.ExpGetObjectInput = m.ExpGetObjectInput[1:]

	result := m.QueuedGetObjectOutput[0]
	m.QueuedGetObjectOutput = m.QueuedGetObjectOutput[1:]

	var err error
	if len(m.QueuedGetObjectError) > 0 {
		err = m.QueuedGetObjectError[0]
		m.QueuedGetObjectError = m.QueuedGetObjectError[1:]
	}
	return result, err
}

// FinishTest - verifies no queued requests/responses were left unconsumed.
// Prints any error too, so example tests pick it up in their output.
func (m *MockS3Client) FinishTest() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.getFinishTestResult()
	if err != nil {
		fmt.Println(err)
	}

	return err
}

func (m *MockS3Client) getFinishTestResult() error {
	if len(m.ExpListObjectsV2Input) > 0 {
		return errors.New("Test expected more ListObjectsV2 calls")
	}
	if len(m.ExpHeadObjectInput) > 0 {
		return errors.New("Test expected more HeadObject calls")
	}
	if len(m.ExpGetObjectInput) > 0 {
		return errors.New("Test expected more GetObject calls")
	}

	if len(m.QueuedListObjectsV2Output) > 0 {
		return errors.New("Remaining output for ListObjectsV2")
	}
	if len(m.QueuedHeadObjectOutput) > 0 {
		return errors.New("Remaining output for HeadObject")
	}
	if len(m.QueuedGetObjectOutput) > 0 {
		return errors.New("Remaining output for GetObject")
	}

	return nil
}
