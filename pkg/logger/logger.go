// Package logger 提供全局日志实例
//
// 基于 logrus，日志级别和格式通过环境变量配置：
//   - LOG_LEVEL: trace/debug/info/warn/error，默认 info
//   - LOG_FORMAT: json 或 text，默认 text
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 是全局日志实例
// 包初始化时即可用（测试无需调用 Init），Init 会按环境变量重新配置
var Log = logrus.New()

// Init 初始化全局日志
// 应在 main() 开始时调用一次
//
// 参数:
//   - verbose: 为 true 时强制使用 debug 级别（对应 -verbose 命令行参数）
func Init(verbose bool) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Discard 关闭日志输出（移动端发布构建使用）
func Discard() {
	Log.SetOutput(io.Discard)
}

// WithComponent 返回带 component 字段的日志条目
// 用法: logger.WithComponent("HopperWorld").Infof("...")
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
