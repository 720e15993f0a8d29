package sfmt

import (
	"encoding/json"
	"fmt"
	"os"
)

// TestVector represents a single SFMT test case derived from the
// reference implementation. Each vector pins a seeding operation and
// one bulk fill: the first values of the output and an FNV-1a digest
// of the entire little-endian output stream.
type TestVector struct {
	Name     string   `json:"name"`
	SeedType string   `json:"seed_type"` // "uint32", "key_array" or "bytes"
	Seed     uint32   `json:"seed,omitempty"`
	Key      []uint32 `json:"key,omitempty"`
	SeedData string   `json:"seed_bytes,omitempty"`
	Fill     string   `json:"fill"` // "uint32" or "uint64"
	Count    int      `json:"count"`
	Head     []uint32 `json:"head,omitempty"`
	Head64   []string `json:"head64,omitempty"` // hex-encoded uint64 values
	Digest   string   `json:"fnv1a64"`          // hex-encoded FNV-1a 64 of the full stream
}

// TestVectorSuite contains all test vectors with metadata about their
// source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
//
// This is used internally for testing but exported for potential
// external validation tools.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// NewGenerator constructs a generator seeded the way the vector
// specifies.
func (tv *TestVector) NewGenerator() (*SFMT, error) {
	switch tv.SeedType {
	case "uint32":
		return New(tv.Seed), nil
	case "key_array":
		return NewFromKey(tv.Key), nil
	case "bytes":
		return NewFromBytes([]byte(tv.SeedData)), nil
	default:
		return nil, fmt.Errorf("unknown seed type %q", tv.SeedType)
	}
}
