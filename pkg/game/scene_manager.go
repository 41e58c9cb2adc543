package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景（"loader"、"home"、"project:kaska"），避免循环依赖
type SceneFactory func(name string) Scene

// SceneManager controls which scene is active. Only the current scene's
// Update and Draw run.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory

	pending    string
	hasPending bool

	width, height float64
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo replaces the active scene. The previous scene is unmounted and
// the new one receives the last known surface size.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if u, ok := sm.currentScene.(Unmounter); ok {
		u.Unmount()
	}
	sm.currentScene = scene
	if r, ok := scene.(Resizer); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName is the name of the scene created by the last navigation.
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Navigate requests a switch to the named scene. The switch happens at the
// start of the next Update so a scene can navigate from inside its own
// Update.
func (sm *SceneManager) Navigate(name string) {
	log.Printf("[SceneManager] Navigate requested: %s", name)
	sm.pending = name
	sm.hasPending = true
}

// NavigateNow switches to the named scene immediately.
func (sm *SceneManager) NavigateNow(name string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}
	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] Switched to %s", name)
	return true
}

// Resize records the surface size and forwards it to the active scene.
func (sm *SceneManager) Resize(width, height float64) {
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Size returns the last surface size passed to Resize.
func (sm *SceneManager) Size() (float64, float64) {
	return sm.width, sm.height
}

// Update applies a pending navigation, then updates the active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.hasPending {
		sm.hasPending = false
		sm.NavigateNow(sm.pending)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close unmounts the active scene.
func (sm *SceneManager) Close() {
	if u, ok := sm.currentScene.(Unmounter); ok {
		u.Unmount()
	}
	sm.currentScene = nil
}
