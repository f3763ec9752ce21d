package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// ErrNotFound 服务器上不存在请求的属性。
var ErrNotFound = errors.New("property not found")

// retryDelay 两次重试之间的等待时间。
var retryDelay = 500 * time.Millisecond

type client struct {
	base    string
	http    *http.Client
	retries int
}

func newClient(cmd *cli.Command) (*client, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName, cfgm.WithEnvPrefix(config.EnvPrefix))
	if err != nil {
		return nil, err
	}
	if _, err := command.SetupLogger(cfg.Log); err != nil {
		return nil, err
	}

	return &client{
		base:    strings.TrimRight(cfg.Client.URL, "/"),
		http:    &http.Client{Timeout: cfg.Client.Timeout},
		retries: cfg.Client.Retries,
	}, nil
}

// get 请求 path 并把 JSON 响应解码到 out；传输错误与 5xx 会重试。
func (c *client) get(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			slog.Debug("Retrying request", "path", path, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		retry, err := c.do(ctx, path, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}

	return fmt.Errorf("request %s failed after %d attempts: %w", path, c.retries+1, lastErr)
}

func (c *client) do(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return true, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return true, fmt.Errorf("server returned %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}

	return false, nil
}

func healthAction(ctx context.Context, cmd *cli.Command) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	var body map[string]string
	if err := c.get(ctx, "/health", &body); err != nil {
		return err
	}
	_, err = fmt.Fprintln(command.Stdout(cmd), body["status"])

	return err
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	var entries []propstore.Entry
	if err := c.get(ctx, "/properties", &entries); err != nil {
		return err
	}

	return command.Render(command.Stdout(cmd), entries, "properties")
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	key := cmd.Args().First()
	if key == "" {
		return errors.New("missing property key")
	}

	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	var e propstore.Entry
	if err := c.get(ctx, "/properties/"+url.PathEscape(key), &e); err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	_, err = fmt.Fprintln(command.Stdout(cmd), e.Value)

	return err
}
