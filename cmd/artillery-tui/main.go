// artillery-tui 终端版炮弹游戏
//
// 键位与桌面版相同：A/B 调整角度，F/S 调整力度，空格发射，R 装填，
// 方向键缩放和平移，Esc/Q 退出。支持鼠标的终端中左键瞄准发射，
// 中键装填，右键拖拽平移，滚轮缩放。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/sound"
	"github.com/decker502/artillery/pkg/systems"
	"github.com/decker502/artillery/pkg/types"
	"github.com/decker502/artillery/pkg/utils"
)

// tui 终端前端
type tui struct {
	screen tcell.Screen
	sim    *systems.Simulation
	clock  utils.Clock
	player *sound.BeepPlayer
	render *renderer
	mouse  mouseState
}

func main() {
	physicsPath := flag.String("physics", "", "物理配置文件路径")
	levelsPath := flag.String("levels", "", "关卡配置文件路径")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	logPath := flag.String("log", "", "日志文件（终端界面占用标准输出）")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "artillery-tui: %v\n", err)
		os.Exit(1)
	}

	if err := run(*physicsPath, *levelsPath, *seed, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "artillery-tui: %v\n", err)
		os.Exit(1)
	}
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func run(physicsPath, levelsPath string, seed int64, mute bool) error {
	physics, levels, err := config.LoadGameConfig(physicsPath, levelsPath)
	if err != nil {
		return err
	}

	store, err := gdata.Open(gdata.Config{AppName: "artillery"})
	if err != nil {
		log.Printf("[TUI] Warning: gdata unavailable: %v", err)
		store = nil
	}
	settings := game.NewSettingsManager(store).GetSettings()

	volume := settings.SoundVolume
	if mute || !settings.SoundEnabled {
		volume = 0
	}
	player := sound.NewBeepPlayer(volume)
	if volume > 0 {
		if err := player.Initialize(); err != nil {
			log.Printf("[TUI] Warning: audio unavailable: %v", err)
		}
	}
	defer player.Cleanup()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gs := game.NewGameState(physics, levels, rand.New(rand.NewSource(seed)))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	clock := utils.NewRealClock()
	t := &tui{
		screen: screen,
		sim:    systems.NewSimulation(gs, clock.Now()),
		clock:  clock,
		player: player,
		render: &renderer{screen: screen},
	}
	t.resize()
	t.loop()

	snap := t.sim.Snapshot()
	log.Printf("[TUI] Finished: score=%d level=%d won=%v", snap.Score, snap.Level, snap.Won)
	return nil
}

func (t *tui) resize() {
	w, h := t.screen.Size()
	t.render.layout = config.TerminalLayout(w, h)
}

func (t *tui) loop() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			t.handleEvent(ev)

		case <-ticker.C:
			t.sim.Update(t.clock.Now())
			for _, e := range t.sim.Events() {
				t.player.Play(e)
				log.Printf("[TUI] Event: %s", e)
			}
			t.render.draw(t.sim.Snapshot())
		}

		if t.sim.Finished() {
			return
		}
	}
}

func (t *tui) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if action := actionForKey(ev.Key(), ev.Rune()); action != types.ActionNone {
			t.sim.Handle(action)
		}

	case *tcell.EventMouse:
		t.handleMouse(ev)

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
}

// handleMouse 鼠标输入，行为与桌面版一致
func (t *tui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	edges := t.mouse.update(buttons)
	layout := t.render.layout

	if edges.pressed&tcell.Button1 != 0 {
		wx, wy := utils.ScreenToWorld(float64(x)+0.5, float64(y)+0.5, layout)
		t.sim.AimAt(wx, wy)
	}
	if edges.released&tcell.Button1 != 0 {
		t.sim.Handle(types.ActionFire)
	}

	if edges.pressed&tcell.Button3 != 0 {
		t.sim.Handle(types.ActionReload)
	}

	if edges.pressed&tcell.Button2 != 0 {
		t.mouse.dragStartX = x
	}
	if edges.released&tcell.Button2 != 0 {
		t.sim.PanBy(-float64(x-t.mouse.dragStartX) / layout.UnitsToPixelX)
		t.sim.Handle(types.ActionCyclePower)
	}

	if buttons&tcell.WheelUp != 0 {
		t.sim.Scroll(1)
	}
	if buttons&tcell.WheelDown != 0 {
		t.sim.Scroll(-1)
	}
}
