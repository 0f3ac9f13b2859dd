package main

import (
	"context"

	"github.com/choonghwanlee/folio/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
