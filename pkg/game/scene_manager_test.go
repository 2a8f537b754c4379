package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64

	disposed int
	viewport utils.Viewport
	resized  int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Dispose() {
	m.disposed++
}

func (m *MockScene) Resize(vp utils.Viewport) {
	m.viewport = vp
	m.resized++
}

// plainScene 不实现任何可选接口
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(8, 8))
	sm.Close()
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(8, 8))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSwitchDisposesPrevious 切换场景时释放旧场景
func TestSceneManagerSwitchDisposesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.disposed != 0 {
		t.Errorf("切换到同一场景不应释放，disposed=%d", scene1.disposed)
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if scene1.disposed != 1 {
		t.Errorf("期望 scene1 被释放一次，实际 %d", scene1.disposed)
	}
	if scene1.updateCalled {
		t.Error("scene1 不应再被更新")
	}
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}

	sm.SwitchTo(plainScene{})
	if scene2.disposed != 1 {
		t.Errorf("期望 scene2 被释放一次，实际 %d", scene2.disposed)
	}
}

// TestSceneManagerResize 视口变化转发给当前场景，新场景切入时收到当前视口
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	sm.SwitchTo(first)

	vp := utils.Viewport{Width: 1280, Height: 720}
	sm.Resize(vp)
	sm.Resize(vp)
	if first.resized != 1 || first.viewport != vp {
		t.Errorf("期望转发一次 %v，实际 %d 次 %v", vp, first.resized, first.viewport)
	}

	second := &MockScene{}
	sm.SwitchTo(second)
	if second.viewport != vp {
		t.Errorf("新场景期望收到视口 %v，实际 %v", vp, second.viewport)
	}
}

// TestSceneManagerLoad 通过工厂按名称加载场景
func TestSceneManagerLoad(t *testing.T) {
	errUnknown := errors.New("unknown scene")
	page := &MockScene{}

	tests := []struct {
		name      string
		factory   SceneFactory
		scene     string
		wantErr   error
		wantScene Scene
	}{
		{
			name:    "未设置工厂",
			scene:   "page",
			wantErr: ErrNoSceneFactory,
		},
		{
			name: "工厂返回错误",
			factory: func(string) (Scene, error) {
				return nil, errUnknown
			},
			scene:   "nope",
			wantErr: errUnknown,
		},
		{
			name: "成功加载",
			factory: func(name string) (Scene, error) {
				return page, nil
			},
			scene:     "page",
			wantScene: page,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			sm.SetSceneFactory(tt.factory)

			err := sm.Load(tt.scene)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v，实际 %v", tt.wantErr, err)
				}
				if sm.GetCurrentScene() != nil {
					t.Error("加载失败时不应切换场景")
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if sm.GetCurrentScene() != tt.wantScene {
				t.Error("期望切换到工厂创建的场景")
			}
			if sm.CurrentName() != tt.scene {
				t.Errorf("期望场景名 %q，实际 %q", tt.scene, sm.CurrentName())
			}
		})
	}
}

// TestSceneManagerClose 关闭时释放当前场景
func TestSceneManagerClose(t *testing.T) {
	sm := NewSceneManager()
	s := &MockScene{}
	sm.SwitchTo(s)
	sm.Close()

	if s.disposed != 1 {
		t.Errorf("期望释放一次，实际 %d", s.disposed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("关闭后不应有活动场景")
	}
}
