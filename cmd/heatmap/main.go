// Command heatmap serves and exports the social vulnerability heat map
// dashboard built from a training_ready_data.csv dataset.
//
// Usage:
//
//	heatmap serve
//	heatmap render --state PA --out ./site
//	heatmap export --state OH --format xlsx --output oh.xlsx
//	heatmap publish --state "All States"
//	heatmap validate
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
