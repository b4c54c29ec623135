package messages

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	InvalidCustomerID                   = "invalidCustomerId"
	TransactionHasInvalidID             = "transactionHasInvalidId"
	TransactionHasInvalidDate           = "transactionHasInvalidDate"
	TransactionHasInvalidCustomerID     = "transactionHasInvalidCustomerId"
	TransactionHasInvalidValue          = "transactionHasInvalidValue"
	TransactionHasNegativeValue         = "transactionHasNegativeValue"
	TransactionHasNotFoundCustomerID    = "transactionHasNotFoundCustomerId"
	TransactionsSpanMoreThanThreeMonths = "transactionsSpanMoreThanThreeMonths"
	CustomerIDNotFound                  = "customerIdNotFound"
	MissingLists                        = "missingLists"
	MalformedRequest                    = "malformedRequest"
)

const missingPrefix = "????"

//go:embed messages.en-US.yaml
var defaultBundle []byte

// Catalog is a read-only key -> message lookup. Safe for concurrent use.
type Catalog struct {
	entries map[string]string
}

// Default returns the embedded en-US catalog.
func Default() *Catalog {
	c, err := Parse(defaultBundle)
	if err != nil {
		panic(fmt.Sprintf("embedded message bundle is invalid: %v", err))
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse message bundle: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// Load returns the default catalog with the entries of the YAML file at path
// layered on top. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message bundle %s: %w", path, err)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return base.Merge(override), nil
}

// FromMap builds a catalog from an explicit mapping; used to substitute
// messages in tests.
func FromMap(entries map[string]string) *Catalog {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Catalog{entries: copied}
}

func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := make(map[string]string, len(c.entries)+len(other.entries))
	for k, v := range c.entries {
		merged[k] = v
	}
	for k, v := range other.entries {
		merged[k] = v
	}
	return &Catalog{entries: merged}
}

// Get never fails: unknown keys come back visibly marked.
func (c *Catalog) Get(key string) string {
	if msg, ok := c.entries[key]; ok {
		return msg
	}
	return missingPrefix + key
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
