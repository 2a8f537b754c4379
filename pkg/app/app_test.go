package app

import (
	"os"
	"testing"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/utils"
)

func newTestApp(t *testing.T, scene string) *App {
	t.Helper()
	data, err := os.ReadFile("../../data/content.yaml")
	if err != nil {
		t.Fatalf("读取文案失败: %v", err)
	}
	content, err := config.ParseContent(data)
	if err != nil {
		t.Fatalf("解析文案失败: %v", err)
	}

	cfg := config.Default()
	cfg.Scene = scene
	cfg.Geometry.Seed = 1
	cfg.Alchemy.Seed = 1

	a, err := NewApp(cfg, content)
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}
	return a
}

func TestAppStepPumpsClock(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{name: "页面", scene: config.ScenePage},
		{name: "嬗变", scene: config.SceneAlchemy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, tt.scene)
			defer a.Close()

			for i := 0; i < 5; i++ {
				a.step(tickDelta)
			}
			if got := a.clock.Frames(); got != 5 {
				t.Errorf("Frames = %d, 期望 5", got)
			}
			if got := a.clock.Pending(); got != 1 {
				t.Errorf("Pending = %d, 期望粒子循环保持 1 个请求", got)
			}
		})
	}
}

func TestAppCloseStopsLoops(t *testing.T) {
	a := newTestApp(t, config.ScenePage)
	a.step(tickDelta)
	a.Close()

	if got := a.clock.Pending(); got != 0 {
		t.Errorf("Close 后 Pending = %d, 期望 0", got)
	}
	if a.SceneManager().GetCurrentScene() != nil {
		t.Error("Close 后不应再有当前场景")
	}
}

func TestAppLayout(t *testing.T) {
	a := newTestApp(t, config.ScenePage)
	defer a.Close()

	w, h := a.Layout(800, 500)
	if w != 800 || h != 500 {
		t.Errorf("Layout = %dx%d, 期望 800x500", w, h)
	}
	if a.viewport != (utils.Viewport{Width: 800, Height: 500}) {
		t.Errorf("viewport = %+v, 期望 800x500", a.viewport)
	}

	// 零尺寸（最小化）不改变视口
	a.Layout(0, 0)
	if a.viewport.Width != 800 {
		t.Errorf("零尺寸不应覆盖视口, 得到 %+v", a.viewport)
	}
}

func TestAppNextScene(t *testing.T) {
	a := newTestApp(t, config.ScenePage)
	defer a.Close()

	if got := a.nextScene(); got != config.SceneAlchemy {
		t.Fatalf("nextScene = %q, 期望 %q", got, config.SceneAlchemy)
	}
	if err := a.sceneManager.Load(a.nextScene()); err != nil {
		t.Fatalf("切换场景失败: %v", err)
	}
	if got := a.nextScene(); got != config.ScenePage {
		t.Errorf("nextScene = %q, 期望 %q", got, config.ScenePage)
	}
	// 旧场景的粒子循环已停止，只剩新场景的一个
	if got := a.clock.Pending(); got != 1 {
		t.Errorf("Pending = %d, 期望 1", got)
	}
}

func TestNewAppErrors(t *testing.T) {
	if _, err := NewApp(nil, nil); err == nil {
		t.Error("缺少配置应返回错误")
	}
}
