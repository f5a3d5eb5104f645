//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.roadhop -o build/android/roadhop.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Roadhop.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/roadhop/pkg/app"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/logger"
)

func init() {
	logger.Init(false)
	logger.Discard()

	// 移动端没有配置文件，使用内置默认值
	gameApp, err := app.NewApp(app.Config{Game: config.DefaultGameConfig()})
	if err != nil {
		logger.Log.WithError(err).Fatal("game initialization failed")
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
