// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import (
	"time"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// AppName 应用名称，用于默认配置路径 (.propexp.yaml 等)。
const AppName = "propexp"

// EnvPrefix 配置项对应环境变量的前缀。
const EnvPrefix = "PROPEXP_"

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"属性展开配置"`
	Server ServerConfig `json:"server" desc:"服务端配置"`
	Client ClientConfig `json:"client" desc:"客户端配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// ExpandConfig 属性展开配置。
type ExpandConfig struct {
	Files            []string `json:"files" desc:"属性文件 (.properties/.yaml/.json/.hcl)，先出现者优先"`
	Env              bool     `json:"env" desc:"导入环境变量"`
	EnvPrefix        string   `json:"env-prefix" desc:"环境变量导入后的 key 前缀"`
	OpaquePrefix     string   `json:"opaque-prefix" desc:"不透明 key 前缀，匹配的 key 不展开"`
	MaxSubstitutions int      `json:"max-substitutions" desc:"单个值的最大替换次数，0 表示不限制"`
	Format           string   `json:"format" desc:"输出格式: properties/yaml/json"`
	All              bool     `json:"all" desc:"输出包含不透明 key"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	URL     string        `json:"url" desc:"服务器地址"`
	Timeout time.Duration `json:"timeout" desc:"请求超时时间"`
	Retries int           `json:"retries" desc:"重试次数"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别: debug/info/warn/error"`
	Format string `json:"format" desc:"日志格式: text/json/auto"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Env:              false,
			EnvPrefix:        propstore.DefaultEnvPrefix,
			OpaquePrefix:     propexp.DefaultOpaquePrefix,
			MaxSubstitutions: 1000,
			Format:           "properties",
		},
		Server: ServerConfig{
			Addr:     ":40117",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
		Client: ClientConfig{
			URL:     "http://localhost:40117",
			Timeout: 30 * time.Second,
			Retries: 3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}
