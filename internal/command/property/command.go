// Package property 提供单属性展开命令。
package property

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
)

// Command 单属性展开命令
var Command = NewCommand()

// NewCommand 创建单属性展开命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "property",
		Usage: "展开一个值并提交到指定属性",
		Description: `未设置 --value 时不做展开，只提交属性已有的值。
默认遵循 set-once 语义：属性已存在时保持原值；--override 强制覆盖。`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "属性名",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "value",
				Aliases: []string{"v"},
				Usage:   "原始值，可包含 ${...} 引用",
			},
			&cli.BoolFlag{
				Name:  "override",
				Usage: "覆盖已存在的属性",
			},
		}, append(command.ExpandFlags(), command.LogFlags()...)...),
		Action: action,
	}
}
