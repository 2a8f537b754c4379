package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Scene represents one top-level view (the scroll page, the standalone
// alchemy field). Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，窗口逻辑尺寸变化时被调用
type Resizable interface {
	Resize(viewport utils.Viewport)
}

// Disposable 是一个可选接口，用于场景在卸载时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - 被另一个场景替换
//   - 程序退出
//
// 场景应在此停止帧循环、注销滚动跟踪器。
type Disposable interface {
	Dispose()
}
