// Package store loads, merges, and saves the company.json document.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/companysim/company-recover/internal/models"
)

// Sentinel errors for store operations. Check with errors.Is().
var (
	// ErrStoreNotFound indicates the company.json file does not exist.
	// Recovery never creates the store from scratch.
	ErrStoreNotFound = errors.New("company store not found")

	// ErrInvalidStore indicates the store file is not valid JSON.
	ErrInvalidStore = errors.New("company store is not valid JSON")
)

// Load reads and decodes the company document at path.
func Load(path string) (*models.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var company models.Company
	if err := json.Unmarshal(data, &company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}
	return &company, nil
}

// Save writes the company document back to path: UTF-8 with non-ASCII
// preserved literally, 2-space indent, full-document rewrite.
func Save(path string, company *models.Company) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(company); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
