// Package client 提供属性查询 HTTP 客户端命令。
package client

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
)

// Command 客户端命令
var Command = NewCommand()

// NewCommand 创建客户端命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "查询 server 命令提供的属性",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "client-url",
				Aliases: []string{"s"},
				Value:   command.Defaults.Client.URL,
				Usage:   "服务器地址",
			},
			&cli.DurationFlag{
				Name:  "client-timeout",
				Value: command.Defaults.Client.Timeout,
				Usage: "请求超时时间",
			},
			&cli.IntFlag{
				Name:  "client-retries",
				Value: command.Defaults.Client.Retries,
				Usage: "重试次数",
			},
		}, command.LogFlags()...),
		Commands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "检查服务器健康状态",
				Action: healthAction,
			},
			{
				Name:   "list",
				Usage:  "列出全部属性",
				Action: listAction,
			},
			{
				Name:      "get",
				Usage:     "读取单个属性的值",
				ArgsUsage: "<key>",
				Action:    getAction,
			},
		},
	}
}
