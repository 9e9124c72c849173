package main

import (
	"context"
	"os"

	"github.com/matt-steen/ball-in-court/pkg/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(context.Background(), version); err != nil {
		os.Exit(1)
	}
}
