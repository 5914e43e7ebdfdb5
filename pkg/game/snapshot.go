package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/types"
)

// ReloadPrompt 炮弹静止或飞出边界后显示的提示
const ReloadPrompt = "Press R or Middle mouse click to Reload"

// Snapshot 渲染所需状态的只读副本
// 展示层只通过它读取模拟状态
type Snapshot struct {
	Mode       types.Mode
	Level      int
	Difficulty int
	Lives      int
	Score      int
	Won        bool
	GameOver   bool

	Projectile components.Projectile
	Aim        components.AimVector
	Targets    []components.Target // 当前模式下有效的目标

	Secondary       components.SecondaryBody
	SecondaryActive bool

	Barriers       components.Barriers
	BarriersActive bool
	BlowerActive   bool
	ArrowFrame     int

	Camera  components.CameraComponent
	Gravity float64

	// PowerBars 力度条格数 round(speed*10)
	PowerBars int
	// WindBars 风力条格数 round(friction*1000)
	WindBars int

	ShowReloadPrompt bool
}

// Snapshot 生成当前状态的快照
func (gs *GameState) Snapshot() Snapshot {
	mode := gs.Level.Mode
	return Snapshot{
		Mode:       mode,
		Level:      gs.Level.Level,
		Difficulty: gs.Level.Difficulty,
		Lives:      gs.Level.Lives,
		Score:      gs.Level.Score,
		Won:        gs.Level.Won,
		GameOver:   gs.IsGameOver(),

		Projectile: gs.Projectile,
		Aim:        gs.Aim,
		Targets:    gs.ActiveTargets(),

		Secondary:       gs.Secondary,
		SecondaryActive: mode.HasSecondaryBody(),

		Barriers:       gs.Level.Barriers,
		BarriersActive: mode.HasBarriers(),
		BlowerActive:   mode == types.ModeBlower,
		ArrowFrame:     gs.ArrowFrame,

		Camera:  gs.Camera,
		Gravity: gs.Level.Gravity,

		PowerBars: int(math.Round(gs.Aim.Speed * 10)),
		WindBars:  int(math.Round(gs.Projectile.Friction * 1000)),

		ShowReloadPrompt: gs.Projectile.ShowReloadPrompt,
	}
}

// StatusLines 状态栏文本，桌面端和终端前端共用
func (s Snapshot) StatusLines() []string {
	return []string{
		fmt.Sprintf("Level %d (%s)   Score %d   Lives %d", s.Level, s.Mode, s.Score, s.Lives),
		fmt.Sprintf("Angle %.1f deg", s.Aim.Angle),
		"Power " + strings.Repeat("|", s.PowerBars),
		"Wind  " + strings.Repeat(">", s.WindBars),
	}
}
