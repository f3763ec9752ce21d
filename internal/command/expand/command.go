// Package expand 提供批量展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/command"
)

// Command 批量展开命令
var Command = NewCommand()

// NewCommand 创建批量展开命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "expand",
		Usage: "展开所有属性中的 ${...} 引用并输出",
		Description: `按 store 顺序逐个展开属性，结果立即写回：
后处理的属性可以看到先处理属性的展开结果。遇到错误立即停止。`,
		Flags:  append(command.ExpandFlags(), command.LogFlags()...),
		Action: action,
	}
}
