// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/scenes"
	"github.com/decker502/artillery/pkg/sound"
	"github.com/decker502/artillery/pkg/systems"
	"github.com/decker502/artillery/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "artillery"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// PhysicsPath 物理配置文件，为空使用内嵌配置
	PhysicsPath string
	// LevelsPath 关卡配置文件，为空使用内嵌配置
	LevelsPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *scenes.GameScene
	settings *game.SettingsManager
	scores   *game.SaveManager
	verbose  bool

	recorded                 bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时使用 Config 中的磁盘路径或内置默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	physics, levels, err := config.LoadGameConfig(cfg.PhysicsPath, cfg.LevelsPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded physics and %d level transitions", len(levels.Transitions))

	// 存储不可用时降级为仅内存
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		store = nil
	}

	settings := game.NewSettingsManager(store)
	scores, err := game.NewSaveManager(store)
	if err != nil {
		log.Printf("[App] Warning: %v (starting with empty high scores)", err)
	}

	audioContext := audio.NewContext(sound.SampleRate)
	sounds := sound.NewSoundManager(audioContext, settings)
	log.Printf("[App] SoundManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := game.NewGameState(physics, levels, rand.New(rand.NewSource(seed)))

	clock := utils.NewRealClock()
	sim := systems.NewSimulation(state, clock.Now())

	return &App{
		scene:    scenes.NewGameScene(sim, clock, sounds),
		settings: settings,
		scores:   scores,
		verbose:  cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.scene.Update(1.0 / 60.0)

	if a.scene.Finished() {
		a.recordScore()
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
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

	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// recordScore 把本局结果写入排行榜，只执行一次
func (a *App) recordScore() {
	if a.recorded || a.scores == nil {
		return
	}
	a.recorded = true

	snap := a.scene.Simulation().Snapshot()
	rank, err := a.scores.Record(game.HighScore{
		Score:    snap.Score,
		Level:    snap.Level,
		Won:      snap.Won,
		PlayedAt: time.Now(),
	})
	if err != nil {
		log.Printf("[App] Warning: failed to save high score: %v", err)
		return
	}
	if rank > 0 {
		log.Printf("[App] New high score #%d: %d", rank, snap.Score)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
