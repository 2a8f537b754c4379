package scenes

import (
	"fmt"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/frame"
	"github.com/gonewx/magnumopus/pkg/game"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 场景共享的依赖
type Deps struct {
	Config   *config.Config
	Content  *config.Content
	Clock    *frame.Clock // 粒子帧循环的调度器，由 App 每次 Update 泵送
	Viewport utils.Viewport
}

// NewFactory 返回按名称创建场景的工厂
func NewFactory(d Deps) game.SceneFactory {
	return func(name string) (game.Scene, error) {
		switch name {
		case config.ScenePage:
			return NewPageScene(d)
		case config.SceneAlchemy:
			return NewAlchemyScene(d)
		}
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
