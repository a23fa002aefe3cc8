package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-lookup/catalog"
	"github.com/amp-labs/amp-lookup/logger"
	"github.com/amp-labs/amp-lookup/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo_Sample(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	products := catalog.Sample()
	ctx := logger.WithMuted(t.Context(), true)

	require.NoError(t, runDemo(ctx, &out, products, 4, 2))

	text := out.String()
	assert.Contains(t, text, "Searching for productId: 4 in 5 products")
	assert.Contains(t, text, `Linear Search Result: Some(Product{id=4, name="Shoes", category="Footwear"}) (5 comparisons)`)
	assert.Contains(t, text, "Sorted by id (order changed: true)")
	assert.Contains(t, text, `Binary Search Result: Some(Product{id=4, name="Shoes", category="Footwear"}) (2 comparisons)`)
	assert.Contains(t, text, "Batch lookup of ids 0..6: 5 found")
	assert.Contains(t, text, "Book, Laptop, Phone, Shirt, Shoes")

	assert.True(t, lookup.IsSortedByKey(products))
}

func TestRunDemo_Missing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ctx := logger.WithMuted(t.Context(), true)

	require.NoError(t, runDemo(ctx, &out, catalog.Sample(), 10, 1))

	assert.Contains(t, out.String(), "Linear Search Result: None (5 comparisons)")
	assert.Contains(t, out.String(), "Binary Search Result: None")
}

func TestRunDemo_EmptyCatalog(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ctx := logger.WithMuted(t.Context(), true)

	require.NoError(t, runDemo(ctx, &out, nil, 1, 1))
	assert.Contains(t, out.String(), "Linear Search Result: None (0 comparisons)")
	assert.Contains(t, out.String(), "Sorted by id (order changed: false)")
	assert.NotContains(t, out.String(), "Batch lookup")
}

func TestRootCommand_CatalogFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_ENABLED", "false")

	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--catalog", filepath.Join("testdata", "products.yaml"), "--target", "20"})

	require.NoError(t, cmd.ExecuteContext(t.Context()))

	assert.Contains(t, out.String(), `Binary Search Result: Some(Product{id=20, name="Mug 2", category="Kitchen"})`)
	assert.Contains(t, out.String(), "Kettle, Mug 2, Mug 12")
}

func TestRootCommand_BadCatalog(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_ENABLED", "false")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "--target", "1"})

	require.Error(t, cmd.ExecuteContext(t.Context()))
}

func TestLoadProducts_Env(t *testing.T) {
	t.Setenv("LOOKUP_CATALOG", filepath.Join("testdata", "products.yaml"))

	products, err := loadProducts("")
	require.NoError(t, err)
	assert.Len(t, products, 3)

	products, err = loadProducts("")
	require.NoError(t, err)
	assert.Equal(t, int64(30), products[0].ID)
}
