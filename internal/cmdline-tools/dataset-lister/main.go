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

package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/craterml/core/core/awsutil"
	"github.com/craterml/core/core/dataset"
	"github.com/craterml/core/core/fileaccess"
	"github.com/craterml/core/core/imageedit"
	"github.com/craterml/core/core/logger"
)

// Lists the usable image/mask pairs of a crater dataset, either on local
// disk or in an S3 bucket, and optionally decodes every pair to prove the
// dataset is readable before a long training run gets started on it.

func main() {
	var argRoot = flag.String("root", "", "Dataset root: local directory, or bucket name with -s3")
	var argS3 = flag.Bool("s3", false, "Read dataset from S3 instead of local disk")
	var argVerify = flag.Bool("verify", false, "Decode every image/mask pair")
	var argResize = flag.Int("resize", 0, "Resize pairs to this square size while verifying, 0 for none")
	var argDebug = flag.Bool("debug", false, "Show debug logging, including dropped records")

	flag.Parse()

	if len(*argRoot) <= 0 {
		log.Fatalln("root not set")
	}

	// Pair listing goes to stdout, so log to stderr
	iLog := &logger.StdErrLogger{}
	iLog.SetLogLevel(logger.LogInfo)
	if *argDebug {
		iLog.SetLogLevel(logger.LogDebug)
	}

	var fs fileaccess.FileAccess = &fileaccess.FSAccess{}

	if *argS3 {
		sess, err := awsutil.GetSession()
		if err != nil {
			log.Fatalf("AWS GetSession failed: %v", err)
		}

		svc, err := awsutil.GetS3(sess)
		if err != nil {
			log.Fatalf("AWS GetS3 failed: %v", err)
		}

		fs = fileaccess.MakeS3Access(svc)
	}

	var transform dataset.Transform
	if *argResize > 0 {
		size := *argResize
		transform = func(img image.Image) image.Image {
			return imageedit.ResizeSquare(img, size)
		}
	}

	pairs, err := dataset.MakeCraterPairs(fs, *argRoot, transform, iLog)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}

	fmt.Printf("%v usable pairs in %v\n", pairs.Count(), *argRoot)
	for _, pair := range pairs.Pairs() {
		fmt.Printf("%v\t%v\n", pair.ImagePath, pair.MaskPath)
	}

	if *argVerify {
		for c := 0; c < pairs.Count(); c++ {
			img, mask, err := pairs.Get(c)
			if err != nil {
				log.Fatalf("Pair %v failed verification: %v", c, err)
			}
			iLog.Debugf("Pair %v OK: image %vx%v, mask %vx%v", c,
				img.Bounds().Dx(), img.Bounds().Dy(), mask.Bounds().Dx(), mask.Bounds().Dy())
		}
		fmt.Printf("Verified %v pairs\n", pairs.Count())
	}
}
