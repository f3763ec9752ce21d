// Package command 提供展开、单属性、服务端与客户端命令的公共部分。
package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// DefineFlag 是 -D key=value 用户定义的 flag 名称，不属于配置结构体。
const DefineFlag = "define"

// ExpandFlags 返回展开相关的 flags，名称与 expand.* 配置 key 对应。
//
// 每次调用返回新的实例，供多个命令分别挂载。
func ExpandFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "expand-files",
			Aliases: []string{"f"},
			Value:   Defaults.Expand.Files,
			Usage:   "属性文件 (.properties/.yaml/.json/.hcl)，先出现者优先",
		},
		&cli.StringSliceFlag{
			Name:    DefineFlag,
			Aliases: []string{"D"},
			Usage:   "用户定义 key=value，优先于所有文件",
		},
		&cli.BoolFlag{
			Name:  "expand-env",
			Value: Defaults.Expand.Env,
			Usage: "导入环境变量 (以 expand-env-prefix 为 key 前缀)",
		},
		&cli.StringFlag{
			Name:  "expand-env-prefix",
			Value: Defaults.Expand.EnvPrefix,
			Usage: "环境变量导入后的 key 前缀",
		},
		&cli.StringFlag{
			Name:  "expand-opaque-prefix",
			Value: Defaults.Expand.OpaquePrefix,
			Usage: "不透明 key 前缀，匹配的 key 不展开",
		},
		&cli.IntFlag{
			Name:  "expand-max-substitutions",
			Value: Defaults.Expand.MaxSubstitutions,
			Usage: "单个值的最大替换次数，0 表示不限制",
		},
		&cli.StringFlag{
			Name:  "expand-format",
			Value: Defaults.Expand.Format,
			Usage: "输出格式: properties/yaml/json",
		},
		&cli.BoolFlag{
			Name:  "expand-all",
			Value: Defaults.Expand.All,
			Usage: "输出包含不透明 key",
		},
	}
}

// LogFlags 返回日志相关的 flags。
func LogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别: debug/info/warn/error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: Defaults.Log.Format,
			Usage: "日志格式: text/json/auto",
		},
	}
}

// Stdout 返回命令的输出目标。
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
