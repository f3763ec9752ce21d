package cfgm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
)

type testConfig struct {
	Name    string        `json:"name"`
	Timeout time.Duration `json:"timeout"`
	Expand  struct {
		Files        []string `json:"files"`
		OpaquePrefix string   `json:"opaque-prefix"`
		Max          int      `json:"max"`
		Env          bool     `json:"env"`
	} `json:"expand"`
}

func defaultTestConfig() testConfig {
	var cfg testConfig
	cfg.Name = "default"
	cfg.Timeout = 5 * time.Second
	cfg.Expand.OpaquePrefix = "env.BASH_FUNC_"
	cfg.Expand.Max = 1000

	return cfg
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FilePrecedence(t *testing.T) {
	path := writeConfig(t, "config.yaml", `name: from-file
timeout: 30s
expand:
  files: [a.properties, b.yaml]
  max: 10
`)

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths("missing.yaml", path))
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a.properties", "b.yaml"}, cfg.Expand.Files)
	assert.Equal(t, 10, cfg.Expand.Max)
	assert.Equal(t, "env.BASH_FUNC_", cfg.Expand.OpaquePrefix, "unset keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"name": "json", "expand": {"env": true}}`)

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Name)
	assert.True(t, cfg.Expand.Env)
}

func TestLoad_BaseDir(t *testing.T) {
	path := writeConfig(t, "config.yaml", "name: relative\n")

	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithBaseDir(filepath.Dir(path)),
		cfgm.WithConfigPaths("config.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "relative", cfg.Name)
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CFGMTEST_NAME", "from-env")
	t.Setenv("CFGMTEST_EXPAND_OPAQUE_PREFIX", "raw.")
	t.Setenv("CFGMTEST_EXPAND_MAX", "7")

	path := writeConfig(t, "config.yaml", "name: from-file\n")
	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithConfigPaths(path),
		cfgm.WithEnvPrefix("CFGMTEST_"),
	)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, "raw.", cfg.Expand.OpaquePrefix)
	assert.Equal(t, 7, cfg.Expand.Max)
}

func TestLoad_EnvListSplitsOnComma(t *testing.T) {
	t.Setenv("CFGMTEST_EXPAND_FILES", "a.properties,b.yaml")

	path := writeConfig(t, "config.yaml", "expand:\n  files: [from-file.properties]\n")
	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithConfigPaths(path),
		cfgm.WithEnvPrefix("CFGMTEST_"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.properties", "b.yaml"}, cfg.Expand.Files)
}

func TestLoad_TemplateExpansion(t *testing.T) {
	t.Setenv("CFGMTEST_STAGE", "prod")
	t.Setenv("CFGMTEST_DIR_prod", "/srv/prod")

	path := writeConfig(t, "config.yaml", `name: "${CFGMTEST_STAGE}"
expand:
  files:
    - "${CFGMTEST_DIR_${CFGMTEST_STAGE}}/build.properties"
`)

	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Name)
	assert.Equal(t, []string{"/srv/prod/build.properties"}, cfg.Expand.Files)

	raw, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithConfigPaths(path),
		cfgm.WithoutTemplateExpansion(),
	)
	require.NoError(t, err)
	assert.Equal(t, "${CFGMTEST_STAGE}", raw.Name)
}

func TestLoad_TemplateExpansionErrors(t *testing.T) {
	path := writeConfig(t, "config.yaml", "name: \"${CFGMTEST_SURELY_MISSING}\"\n")

	_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))

	var unresolved *propexp.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "name", unresolved.Key)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "- not\n- a map\n")

	_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
	require.Error(t, err)
}

func TestLoadCmd_FlagsOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "name: from-file\ntimeout: 30s\n")

	var got *testConfig
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.DurationFlag{Name: "timeout"},
			&cli.StringSliceFlag{Name: "expand-files"},
			&cli.IntFlag{Name: "expand-max"},
			&cli.BoolFlag{Name: "expand-env"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := cfgm.LoadCmd(cmd, defaultTestConfig(), "",
				cfgm.WithConfigPaths(path),
			)
			got = cfg

			return err
		},
	}

	err := cmd.Run(context.Background(), []string{
		"test",
		"--name", "from-flag",
		"--expand-files", "x.properties",
		"--expand-files", "y.hcl",
		"--expand-max", "3",
		"--expand-env",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "from-flag", got.Name)
	assert.Equal(t, 30*time.Second, got.Timeout, "unset flag keeps file value")
	assert.Equal(t, []string{"x.properties", "y.hcl"}, got.Expand.Files)
	assert.Equal(t, 3, got.Expand.Max)
	assert.True(t, got.Expand.Env)
}

func TestMustLoadCmd_Panics(t *testing.T) {
	path := writeConfig(t, "config.yaml", "name: [unterminated\n")
	cmd := &cli.Command{Name: "test"}

	assert.Panics(t, func() {
		cfgm.MustLoadCmd(cmd, defaultTestConfig(), "", cfgm.WithConfigPaths(path))
	})
}
