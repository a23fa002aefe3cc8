// Package catalog supplies Product records for lookups: the built-in sample
// catalog, YAML catalog files, and helpers for displaying and fingerprinting
// a product sequence.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"facette.io/natsort"
	lookuperrors "github.com/amp-labs/amp-lookup/errors"
	"github.com/amp-labs/amp-lookup/hashing"
	"github.com/amp-labs/amp-lookup/lookup"
	"gopkg.in/yaml.v3"
)

// Product is a catalog entry. Only ID takes part in lookups; the other
// fields are payload.
type Product struct {
	ID       int64   `json:"id"       yaml:"id"`
	Name     string  `json:"name"     yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price"    yaml:"price"`
}

var _ lookup.Record = Product{}

// Key implements lookup.Record.
func (p Product) Key() int64 {
	return p.ID
}

func (p Product) String() string {
	return fmt.Sprintf("Product{id=%d, name=%q, category=%q}", p.ID, p.Name, p.Category)
}

// Sample returns the demo catalog, deliberately unsorted by ID. Each call
// returns a fresh slice the caller may sort.
func Sample() []Product {
	return []Product{
		{ID: 3, Name: "Laptop", Category: "Electronics", Price: 999.99},
		{ID: 1, Name: "Shirt", Category: "Clothing", Price: 19.99},
		{ID: 5, Name: "Book", Category: "Books", Price: 12.50},
		{ID: 2, Name: "Phone", Category: "Electronics", Price: 599.00},
		{ID: 4, Name: "Shoes", Category: "Footwear", Price: 79.95},
	}
}

// file is the on-disk layout of a catalog:
//
//	products:
//	  - id: 1
//	    name: Shirt
//	    category: Clothing
//	    price: 19.99
type file struct {
	Products []Product `yaml:"products"`
}

// Load parses a YAML catalog. Products keep their file order. Every invalid
// product is reported, not just the first.
func Load(r io.Reader) ([]Product, error) {
	var f file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if err == io.EOF { //nolint:errorlint
			return []Product{}, nil
		}

		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if err := validate(f.Products); err != nil {
		return nil, err
	}

	if f.Products == nil {
		return []Product{}, nil
	}

	return f.Products, nil
}

// LoadFile reads the catalog at path.
func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the catalog the user asked for
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	products, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return products, nil
}

// validate rejects nameless products and negative prices. Duplicate IDs are
// allowed.
func validate(products []Product) error {
	var errs lookuperrors.Collection

	for i, p := range products {
		if p.Name == "" {
			errs.Add(fmt.Errorf("%w: product #%d (id %d) has no name", lookuperrors.ErrInvalidRecord, i, p.ID))
		}

		if p.Price < 0 {
			errs.Add(fmt.Errorf("%w: product #%d (id %d) has negative price %v",
				lookuperrors.ErrInvalidRecord, i, p.ID, p.Price))
		}
	}

	return errs.GetError()
}

// Names returns the product names in natural order ("Item 2" before
// "Item 10").
func Names(products []Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}

	natsort.Sort(names)

	return names
}

// Fingerprint digests the key order of seq. Two sequences share a
// fingerprint when their keys appear in the same order, which makes it a
// cheap check that sorting a sorted sequence left it unchanged.
func Fingerprint[R lookup.Record](seq []R) uint64 {
	keys := make(hashing.Int64s, len(seq))
	for i, r := range seq {
		keys[i] = r.Key()
	}

	// Writes into an xxh3 hasher never fail.
	sum, _ := hashing.XXH3(keys)

	return sum
}
