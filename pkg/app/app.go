// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/scenes"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartScene 启动场景：loader、home 或 project:<name>
	StartScene string
	// Width, Height 窗口大小（逻辑像素）
	Width, Height int
	// Audio 启用加载音效
	Audio bool
	// Target 加载动画最后打出的文字
	Target string
	// Seed 粒子随机种子，0 表示按时间
	Seed int64
	// PresetsFile 覆盖内置预设的 YAML 文件
	PresetsFile string
	// FontFile 覆盖内置字体的 TTF/OTF 文件
	FontFile string
	// CueFile 替换合成加载音效的音频文件（mp3/ogg/wav）
	CueFile string
}

// ConfigFrom converts the loaded settings.
func ConfigFrom(ac *config.AppConfig) Config {
	return Config{
		Verbose:     ac.Verbose,
		StartScene:  ac.StartScene,
		Width:       ac.WindowWidth,
		Height:      ac.WindowHeight,
		Audio:       ac.Audio,
		Target:      ac.TargetName,
		Seed:        ac.Seed,
		PresetsFile: ac.PresetsFile,
		CueFile:     ac.CueFile,
		FontFile:    ac.FontFile,
	}
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	env          *scenes.Env
	input        *scenes.EbitenInput
	cfg          Config

	layoutW, layoutH         int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = config.GameWindowWidth, config.GameWindowHeight
	}
	if cfg.StartScene == "" {
		cfg.StartScene = scenes.SceneLoader
	}
	if _, _, err := config.ParseStartScene(cfg.StartScene); err != nil {
		return nil, err
	}

	resourceManager, err := game.NewResourceManager(cfg.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("预设加载失败: %w", err)
	}
	if cfg.FontFile != "" {
		if err := resourceManager.SetFontFile(cfg.FontFile); err != nil {
			return nil, fmt.Errorf("字体加载失败: %w", err)
		}
		log.Printf("[App] Using font %s", resourceManager.FontPath())
	}

	var audioContext *audio.Context
	if cfg.Audio {
		audioContext = audio.NewContext(game.DefaultSampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, cfg.Audio)
	if cfg.CueFile != "" {
		if err := audioManager.LoadCueFile(cfg.CueFile); err != nil {
			return nil, fmt.Errorf("音效加载失败: %w", err)
		}
	}
	log.Printf("[App] AudioManager initialized (enabled=%v)", audioManager.Enabled())

	input := scenes.NewEbitenInput()
	sceneManager := game.NewSceneManager()
	env := &scenes.Env{
		Resources: resourceManager,
		Scenes:    sceneManager,
		Audio:     audioManager,
		Input:     input,
		DPR:       deviceScale(),
		Target:    cfg.Target,
		Seed:      cfg.Seed,
	}
	sceneManager.SetSceneFactory(scenes.Factory(env))

	log.Printf("[App] Starting scene: %s (dpr=%.2f)", cfg.StartScene, env.DPR)
	if !sceneManager.NavigateNow(cfg.StartScene) {
		return nil, fmt.Errorf("无法创建启动场景 %s", cfg.StartScene)
	}

	return &App{
		sceneManager: sceneManager,
		audioManager: audioManager,
		env:          env,
		input:        input,
		cfg:          cfg,
	}, nil
}

// deviceScale 返回当前显示器的设备像素比
func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Width, a.cfg.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.input.Poll()
	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回设备像素尺寸，尺寸变化时通知当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := deviceScale()
	w, h := ScaledSize(outsideWidth, outsideHeight, dpr)
	if w != a.layoutW || h != a.layoutH {
		a.layoutW, a.layoutH = w, h
		a.env.DPR = dpr
		log.Printf("[App] Layout %dx%d (dpr=%.2f)", w, h, dpr)
		a.sceneManager.Resize(float64(w), float64(h))
	}
	return w, h
}

// ScaledSize converts a logical size to device pixels, at least 1×1.
func ScaledSize(w, h int, dpr float64) (int, int) {
	if dpr <= 0 {
		dpr = 1
	}
	return max(1, int(float64(w)*dpr)), max(1, int(float64(h)*dpr))
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}

// Close 卸载当前场景并释放音频
func (a *App) Close() {
	a.sceneManager.Close()
	a.audioManager.Close()
}
