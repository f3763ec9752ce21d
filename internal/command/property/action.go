package property

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
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

	p := propexp.Property{
		Name:     cmd.String("name"),
		Override: cmd.Bool("override"),
	}
	if cmd.IsSet("value") {
		p.Value = propexp.StringValue(cmd.String("value"))
	}

	value, err := command.NewResolver(cfg.Expand, store).ExpandProperty(p)
	if err != nil {
		return fmt.Errorf("expand property: %w", err)
	}

	_, err = fmt.Fprintln(command.Stdout(cmd), value)

	return err
}
