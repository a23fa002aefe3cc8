// Command lookupdemo walks through a product lookup: a linear search on the
// unsorted catalog, a sort by id, then a binary search, with the work each
// one did.
//
// Usage:
//
//	lookupdemo --target 4
//	lookupdemo --catalog products.yaml --target 12
//	LOOKUP_CATALOG=products.yaml lookupdemo        # prompts for the id
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/amp-lookup/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logger.Get(ctx).Error("lookupdemo failed", "error", err)
		stop()
		os.Exit(1)
	}
}
