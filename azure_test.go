// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeAzureMetadata serves the compute/vmSize leaf the way the Azure
// instance metadata service does, including its insistence on the
// Metadata header and an api-version.
func fakeAzureMetadata(vmSize string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Metadata") != "true" {
			http.Error(w, "Required metadata header not specified", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("api-version") == "" {
			http.Error(w, "Required query parameter 'api-version' is missing", http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/metadata/instance/compute/vmSize" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, vmSize)
	}
}

func TestAzureEnvDetect(t *testing.T) {
	ts := httptest.NewServer(fakeAzureMetadata("Standard_L16s_v2"))
	defer ts.Close()

	env := AzureEnv{Endpoint: ts.URL, Logger: testLogger(t)}
	err := env.MinimalInit()
	if err != nil {
		t.Fatalf("Failed to set up azure env: %v", err)
	}
	if !env.Detect() {
		t.Fatalf("Expected detection to succeed against the fake metadata service")
	}

	itype, err := env.InstanceType()
	if err != nil {
		t.Fatalf("Failed to get vm size: %v", err)
	}
	if itype != "Standard_L16s_v2" {
		t.Fatalf("Expected vm size Standard_L16s_v2, got %q", itype)
	}
}

func TestAzureEnvDetectFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	env := AzureEnv{Endpoint: ts.URL, Logger: testLogger(t)}
	err := env.MinimalInit()
	if err != nil {
		t.Fatalf("Failed to set up azure env: %v", err)
	}
	if env.Detect() {
		t.Fatalf("Expected detection to fail against a server with no metadata")
	}
}

func TestAzureEnvIOProperties(t *testing.T) {
	ts := httptest.NewServer(fakeAzureMetadata("Standard_L16s_v2"))
	defer ts.Close()

	env := AzureEnv{Endpoint: ts.URL, Logger: testLogger(t)}
	err := env.MinimalInit()
	if err != nil {
		t.Fatalf("Failed to set up azure env: %v", err)
	}

	itype, err := env.InstanceType()
	if err != nil {
		t.Fatalf("Failed to get vm size: %v", err)
	}
	props, err := env.IOProperties(itype, 2)
	if err != nil {
		t.Fatalf("Failed to classify %s: %v", itype, err)
	}
	expected := DiskProperties{DefaultDataDir, 800000, 4000000000, 552434, 2730000000}
	if props != expected {
		t.Fatalf("Expected %+v, got %+v", expected, props)
	}
}
