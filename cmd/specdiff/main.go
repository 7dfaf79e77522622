// Command specdiff compares the OpenAPI document generated by a running
// server against the checked-in reference file.
//
// The reference YAML is first checked to be a parseable OpenAPI document,
// then both documents are normalized through a JSON round trip and compared
// structurally. Exit code 1 signals a mismatch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"time"

	"github.com/pb33f/libopenapi"
	"gopkg.in/yaml.v3"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	specPath := flag.String("spec", "resources/openapi.yaml", "path to the reference OpenAPI YAML file")
	serverURL := flag.String("url", "http://127.0.0.1:8080/openapi.json", "URL of the live OpenAPI document")
	flag.Parse()

	reference, err := loadReference(*specPath)
	if err != nil {
		slog.Error("failed to load reference document", "path", *specPath, "error", err)
		os.Exit(2)
	}

	live, err := fetchLive(*serverURL)
	if err != nil {
		slog.Error("failed to fetch live document", "url", *serverURL, "error", err)
		os.Exit(2)
	}

	if reflect.DeepEqual(reference, live) {
		fmt.Println("The OpenAPI specification matches the implementation")
		return
	}

	fmt.Println("The OpenAPI specification does not match the implementation")
	os.Exit(1)
}

// loadReference reads the YAML reference, verifies that it is a buildable
// OpenAPI document and returns it normalized for comparison.
func loadReference(path string) (any, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := libopenapi.NewDocument(contents)
	if err != nil {
		return nil, fmt.Errorf("not an OpenAPI document: %w", err)
	}
	if _, errs := doc.BuildV3Model(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid OpenAPI document: %v", errs[0])
	}

	var raw any
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, err
	}

	return normalize(raw)
}

func fetchLive(url string) (any, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return normalize(raw)
}

// normalize runs a value through a JSON round trip so that YAML and JSON
// decodings compare equal: integers become float64, nested maps become
// map[string]any.
func normalize(value any) (any, error) {
	contents, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var res any
	if err := json.Unmarshal(contents, &res); err != nil {
		return nil, err
	}
	return res, nil
}
