//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.magnumopus -o build/android/magnumopus.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/MagnumOpus.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/app"
	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/embedded"
)

func init() {
	if err := logger.Init("info", ""); err != nil {
		panic(err)
	}

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)
	data, err := embedded.ReadFile(config.ContentPath)
	if err != nil {
		logger.Error("[Mobile] read content failed", zap.Error(err))
		panic(err)
	}
	content, err := config.ParseContent(data)
	if err != nil {
		logger.Error("[Mobile] parse content failed", zap.Error(err))
		panic(err)
	}

	// 移动端使用默认配置，窗口尺寸由 Layout 报告的屏幕尺寸覆盖
	gameApp, err := app.NewApp(config.Default(), content)
	if err != nil {
		logger.Error("[Mobile] init failed", zap.Error(err))
		panic(err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
