package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvsearch/cmd"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// run the command
	cmd.Execute(ctx, version)
}
