package property_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command/property"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	root := &cli.Command{
		Name:     "propexp",
		Writer:   &buf,
		Commands: []*cli.Command{property.NewCommand()},
	}
	err := root.Run(context.Background(), append([]string{"propexp", "property", "--expand-env=false", "--log-level", "error"}, args...))

	return buf.String(), err
}

func serverFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.properties")
	require.NoError(t, os.WriteFile(path, []byte(`scheme=https
server.www=www.pharmgkb.org
name=www
path=some/path
`), 0o600))
	return path
}

func TestProperty(t *testing.T) {
	out, err := run(t, "-f", serverFile(t), "--name", "key", "--value", "${scheme}://${server.${name}}/${path}")
	require.NoError(t, err)
	assert.Equal(t, "https://www.pharmgkb.org/some/path\n", out)
}

func TestProperty_Override(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "existing value kept", args: nil, want: "prior\n"},
		{name: "override replaces", args: []string{"--override"}, want: "www\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-f", serverFile(t), "-D", "key=prior", "--name", "key", "--value", "${name}"}, tt.args...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestProperty_NoValue(t *testing.T) {
	out, err := run(t, "-f", serverFile(t), "--name", "scheme")
	require.NoError(t, err)
	assert.Equal(t, "https\n", out)

	_, err = run(t, "-f", serverFile(t), "--name", "absent")
	require.ErrorIs(t, err, propexp.ErrMissingValue)
}

func TestProperty_SelfReference(t *testing.T) {
	_, err := run(t, "-D", "loop=${loop}", "--name", "key", "--value", "${loop}")

	var self *propexp.SelfReferenceError
	require.ErrorAs(t, err, &self)
	assert.Equal(t, "loop", self.Ref)
}
