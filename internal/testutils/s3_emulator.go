// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const (
	regionUSEast1 = "us-east-1"
	maxBodyBytes  = 64 * 1024
)

var emulatorCorsMethods = map[string]struct{}{
	"GET": {}, "PUT": {}, "POST": {}, "DELETE": {}, "HEAD": {},
}

// CorsRule is the XML form of a single CORS rule.
type CorsRule struct {
	ID             string   `xml:"ID,omitempty"`
	AllowedHeaders []string `xml:"AllowedHeader"`
	AllowedMethods []string `xml:"AllowedMethod"`
	AllowedOrigins []string `xml:"AllowedOrigin"`
	ExposeHeaders  []string `xml:"ExposeHeader"`
	MaxAgeSeconds  *int32   `xml:"MaxAgeSeconds,omitempty"`
}

type corsConfiguration struct {
	XMLName xml.Name   `xml:"CORSConfiguration"`
	Rules   []CorsRule `xml:"CORSRule"`
}

type createBucketConfiguration struct {
	XMLName            xml.Name `xml:"CreateBucketConfiguration"`
	LocationConstraint string   `xml:"LocationConstraint"`
}

type errorResponse struct {
	XMLName    xml.Name `xml:"Error"`
	Code       string   `xml:"Code"`
	Message    string   `xml:"Message"`
	BucketName string   `xml:"BucketName,omitempty"`
	RequestID  string   `xml:"RequestId"`
}

type emulatedBucket struct {
	location string
	cors     []CorsRule
}

// S3Emulator is an in-memory HTTP server answering the bucket calls used by
// the provisioner: CreateBucket, PutBucketCors, GetBucketCors and HeadBucket.
// Requests must use path-style addressing.
type S3Emulator struct {
	server *httptest.Server

	mu      sync.Mutex
	buckets map[string]*emulatedBucket
	// rejectCors makes every PutBucketCors fail with MalformedXML.
	rejectCors bool
	requests   []string
}

// NewS3Emulator starts a new emulator. It is closed on test cleanup.
func NewS3Emulator(t interface{ Cleanup(func()) }) *S3Emulator {
	e := &S3Emulator{
		buckets: make(map[string]*emulatedBucket),
	}

	e.server = httptest.NewServer(http.HandlerFunc(e.handle))
	t.Cleanup(e.server.Close)

	return e
}

// URL returns the base endpoint of the emulator.
func (e *S3Emulator) URL() string {
	return e.server.URL
}

// Close stops the emulator, following requests fail with connection errors.
func (e *S3Emulator) Close() {
	e.server.Close()
}

// RejectCors makes the following PutBucketCors calls fail.
func (e *S3Emulator) RejectCors(reject bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rejectCors = reject
}

// AddBucket creates a bucket without going through the API.
func (e *S3Emulator) AddBucket(name, location string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.buckets[name] = &emulatedBucket{location: location}
}

// BucketExists reports whether the bucket was created.
func (e *S3Emulator) BucketExists(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.buckets[name]

	return ok
}

// Location returns the location constraint the bucket was created with.
func (e *S3Emulator) Location(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b, ok := e.buckets[name]; ok {
		return b.location
	}

	return ""
}

// Cors returns the CORS rules attached to the bucket.
func (e *S3Emulator) Cors(name string) []CorsRule {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b, ok := e.buckets[name]; ok {
		return b.cors
	}

	return nil
}

// Requests returns the operations served so far, in order.
func (e *S3Emulator) Requests() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.requests...)
}

func (e *S3Emulator) handle(w http.ResponseWriter, r *http.Request) {
	bucket, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if bucket == "" {
		writeError(w, http.StatusBadRequest, "InvalidBucketName", "bucket name is empty", "")
		return
	}

	_, isCors := r.URL.Query()["cors"]

	switch {
	case r.Method == http.MethodPut && isCors:
		e.putBucketCors(w, r, bucket)
	case r.Method == http.MethodGet && isCors:
		e.getBucketCors(w, bucket)
	case r.Method == http.MethodPut:
		e.createBucket(w, r, bucket)
	case r.Method == http.MethodHead:
		e.headBucket(w, bucket)
	default:
		writeError(w, http.StatusNotImplemented, "NotImplemented",
			fmt.Sprintf("%s %s is not supported", r.Method, r.URL.Path), bucket)
	}
}

func (e *S3Emulator) createBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	e.track("CreateBucket")

	var cfg createBucketConfiguration

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "IncompleteBody", err.Error(), bucket)
		return
	}

	if len(body) > 0 {
		if err = xml.Unmarshal(body, &cfg); err != nil {
			writeError(w, http.StatusBadRequest, "MalformedXML", err.Error(), bucket)
			return
		}
	}

	if cfg.LocationConstraint == regionUSEast1 {
		writeError(w, http.StatusBadRequest, "InvalidLocationConstraint",
			"The specified location-constraint is not valid", bucket)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.buckets[bucket]; ok {
		writeError(w, http.StatusConflict, "BucketAlreadyOwnedByYou",
			"Your previous request to create the named bucket succeeded and you already own it.", bucket)
		return
	}

	e.buckets[bucket] = &emulatedBucket{location: cfg.LocationConstraint}

	w.Header().Set("Location", "/"+bucket)
	w.WriteHeader(http.StatusOK)
}

func (e *S3Emulator) putBucketCors(w http.ResponseWriter, r *http.Request, bucket string) {
	e.track("PutBucketCors")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "IncompleteBody", err.Error(), bucket)
		return
	}

	var cfg corsConfiguration
	if err = xml.Unmarshal(body, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedXML", err.Error(), bucket)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.buckets[bucket]
	if !ok {
		writeError(w, http.StatusNotFound, "NoSuchBucket", "The specified bucket does not exist", bucket)
		return
	}

	if e.rejectCors || len(cfg.Rules) == 0 {
		writeError(w, http.StatusBadRequest, "MalformedXML",
			"The XML you provided was not well-formed or did not validate against our published schema", bucket)
		return
	}

	for _, rule := range cfg.Rules {
		for _, m := range rule.AllowedMethods {
			if _, ok := emulatorCorsMethods[m]; !ok {
				writeError(w, http.StatusBadRequest, "InvalidRequest",
					"Found unsupported HTTP method in CORS config. Unsupported method is "+m, bucket)
				return
			}
		}
	}

	b.cors = cfg.Rules

	w.WriteHeader(http.StatusOK)
}

func (e *S3Emulator) getBucketCors(w http.ResponseWriter, bucket string) {
	e.track("GetBucketCors")

	e.mu.Lock()
	b, ok := e.buckets[bucket]

	var rules []CorsRule
	if ok {
		rules = b.cors
	}
	e.mu.Unlock()

	switch {
	case !ok:
		writeError(w, http.StatusNotFound, "NoSuchBucket", "The specified bucket does not exist", bucket)
		return
	case len(rules) == 0:
		writeError(w, http.StatusNotFound, "NoSuchCORSConfiguration",
			"The CORS configuration does not exist", bucket)
		return
	}

	writeXML(w, http.StatusOK, &corsConfiguration{Rules: rules})
}

func (e *S3Emulator) headBucket(w http.ResponseWriter, bucket string) {
	e.track("HeadBucket")

	if !e.BucketExists(bucket) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (e *S3Emulator) track(op string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.requests = append(e.requests, op)
}

func writeError(w http.ResponseWriter, status int, code, message, bucket string) {
	writeXML(w, status, &errorResponse{
		Code:       code,
		Message:    message,
		BucketName: bucket,
		RequestID:  "emulator",
	})
}

func writeXML(w http.ResponseWriter, status int, v any) {
	body, err := xml.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}
