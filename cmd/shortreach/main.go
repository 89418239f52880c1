// Command shortreach answers batches of shortest-reach queries and generates
// query inputs from the builder topologies.
//
//	shortreach solve queries.txt
//	shortreach solve --format yaml --workers 8 --metrics-file reach.prom < queries.yaml
//	shortreach generate --kind grid --rows 3 --cols 4 --isolated 2
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
