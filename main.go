package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command/client"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/command/expand"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/command/property"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/command/server"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
)

// version 由构建时 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    config.AppName,
		Usage:   "属性引用展开工具",
		Version: version,
		Commands: []*cli.Command{
			expand.Command,
			property.Command,
			server.Command,
			client.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
