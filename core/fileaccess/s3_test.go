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

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/craterml/core/core/awsutil"
)

func Example_s3ListingWithContinuation() {
	const bucket = "dev-crater-data"
	const listPath = "train/"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpListObjectsV2Input = []s3.ListObjectsV2Input{
		{
			Bucket: aws.String(bucket), Prefix: aws.String(listPath),
		},
		{
			Bucket: aws.String(bucket), Prefix: aws.String(listPath), ContinuationToken: aws.String("cont-1"),
		},
	}
	mockS3.QueuedListObjectsV2Output = []*s3.ListObjectsV2Output{
		{
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("cont-1"),
			Contents: []*s3.Object{
				{Key: aws.String("train/data_rec.json")},
				{Key: aws.String("train/0.png")},
				{Key: aws.String("train/1.png")},
			},
		},
		{
			IsTruncated: aws.Bool(false),
			Contents: []*s3.Object{
				{Key: aws.String("train/mask/0.png")},
				{Key: aws.String("train/mask/1.png")},
			},
		},
	}

	fs := MakeS3Access(&mockS3)
	list, err := fs.ListObjects(bucket, listPath)
	fmt.Printf("%v, list: %v\n", err, list)

	// Output:
	// <nil>, list: [train/data_rec.json train/0.png train/1.png train/mask/0.png train/mask/1.png]
}

func Example_s3ObjectExists() {
	const bucket = "dev-crater-data"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpHeadObjectInput = []s3.HeadObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("train/0.png")},
		{Bucket: aws.String(bucket), Key: aws.String("train/missing.png")},
	}
	mockS3.QueuedHeadObjectOutput = []*s3.HeadObjectOutput{
		{},
		nil,
	}
	mockS3.QueuedHeadObjectError = []error{
		nil,
		awserr.New("NotFound", "Not Found", nil),
	}

	fs := MakeS3Access(&mockS3)

	exists, err := fs.ObjectExists(bucket, "train/0.png")
	fmt.Printf("%v|%v\n", exists, err)

	exists, err = fs.ObjectExists(bucket, "train/missing.png")
	fmt.Printf("%v|%v\n", exists, err)

	// Output:
	// true|<nil>
	// false|<nil>
}
