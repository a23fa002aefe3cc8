package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-lookup/catalog"
	"github.com/amp-labs/amp-lookup/service"
)

// runDemo sorts products in place.
func runDemo(ctx context.Context, out io.Writer, products []catalog.Product, target int64, workers int) error {
	svc := service.New[catalog.Product](service.WithWorkers(workers))
	defer svc.Close()

	p := &printer{w: out}

	p.printf("Searching for productId: %d in %d products\n", target, len(products))

	linear, err := svc.Explain(ctx, service.StrategyLinear, products, target)
	if err != nil {
		return err
	}

	p.printf("Linear Search Result: %v (%d comparisons)\n", linear.Value, linear.Probes)

	before := catalog.Fingerprint(products)
	svc.Sort(ctx, products)
	after := catalog.Fingerprint(products)

	p.printf("Sorted by id (order changed: %t)\n", before != after)

	binary, err := svc.Explain(ctx, service.StrategyBinary, products, target)
	if err != nil {
		return err
	}

	p.printf("Binary Search Result: %v (%d comparisons)\n", binary.Value, binary.Probes)

	if err := batch(ctx, p, svc, products); err != nil {
		return err
	}

	p.printf("\n--- Time Complexity Analysis ---\n")
	p.printf("Linear Search: O(n) - Best: O(1), Average: O(n/2), Worst: O(n)\n")
	p.printf("Binary Search: O(log n) - Best: O(1), Average/Worst: O(log n) (requires sorted input)\n")

	p.printf("\n--- Catalog ---\n")
	p.printf("%s\n", strings.Join(catalog.Names(products), ", "))

	return p.err
}

// maxBatchIDs caps the batch section for catalogs with very large ids.
const maxBatchIDs = 10_000

// batch looks up every id from 0 to one past the largest, showing how many
// of them exist.
func batch(ctx context.Context, p *printer, svc *service.Service[catalog.Product], sorted []catalog.Product) error {
	if len(sorted) == 0 {
		return nil
	}

	maxID := max(sorted[len(sorted)-1].ID+1, 0)
	if maxID > maxBatchIDs {
		return nil
	}

	targets := make([]int64, 0, maxID+1)
	for id := range maxID + 1 {
		targets = append(targets, id)
	}

	results, err := svc.BatchBinary(ctx, sorted, targets)
	if err != nil {
		return err
	}

	found := 0

	for _, r := range results {
		if r.NonEmpty() {
			found++
		}
	}

	p.printf("Batch lookup of ids 0..%d: %d found\n", maxID, found)

	return nil
}

// printer keeps the first write error so the demo output reads linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
