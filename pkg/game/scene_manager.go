package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// ErrNoSceneFactory 未设置场景工厂时 Load 返回此错误
var ErrNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
	viewport     utils.Viewport
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene. The previous scene is disposed if it
// implements Disposable; the new one receives the current viewport if it
// implements Resizable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	sm.disposeCurrent()
	sm.currentScene = scene
	sm.currentName = ""
	if r, ok := scene.(Resizable); ok && sm.viewport.Valid() {
		r.Resize(sm.viewport)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 加载的场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂创建指定名称的场景并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) Load(name string) error {
	logger.Info("[SceneManager] loading scene", zap.String("scene", name))

	if sm.sceneFactory == nil {
		return fmt.Errorf("load scene %q: %w", name, ErrNoSceneFactory)
	}

	scene, err := sm.sceneFactory(name)
	if err != nil {
		logger.Error("[SceneManager] failed to create scene", zap.String("scene", name), zap.Error(err))
		return fmt.Errorf("load scene %q: %w", name, err)
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	logger.Info("[SceneManager] switched scene", zap.String("scene", name))
	return nil
}

// Resize 记录新的视口并转发给当前场景
func (sm *SceneManager) Resize(viewport utils.Viewport) {
	if viewport == sm.viewport {
		return
	}
	sm.viewport = viewport
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(viewport)
	}
}

// Close 释放当前场景
func (sm *SceneManager) Close() {
	sm.disposeCurrent()
	sm.currentScene = nil
	sm.currentName = ""
}

func (sm *SceneManager) disposeCurrent() {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
