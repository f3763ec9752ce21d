package expand

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/cfgm"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName, cfgm.WithEnvPrefix(config.EnvPrefix))
	if err != nil {
		return err
	}
	if _, err := command.SetupLogger(cfg.Log); err != nil {
		return err
	}

	store, err := command.BuildStore(cfg.Expand, cmd.StringSlice(command.DefineFlag), os.Environ())
	if err != nil {
		return err
	}

	r := command.NewResolver(cfg.Expand, store)
	if _, err := r.ExpandAll(); err != nil {
		return fmt.Errorf("expand properties: %w", err)
	}

	return command.Render(command.Stdout(cmd), command.VisibleEntries(store, r, cfg.Expand.All), cfg.Expand.Format)
}
