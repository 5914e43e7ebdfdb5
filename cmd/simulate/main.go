// simulate 无界面地运行炮弹模拟并打印轨迹
//
// 用法:
//
//	go run ./cmd/simulate -x 3 -y 2 -shots 3
//	go run ./cmd/simulate -power 4 -seed 42 -trace
//	go run ./cmd/simulate -actions increase-angle,increase-angle,fire,reload,fire
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/systems"
	"github.com/decker502/artillery/pkg/types"
	"github.com/decker502/artillery/pkg/utils"
)

// options 命令行参数
type options struct {
	aimX, aimY  float64
	power       int // 力度调整档数，正数加大
	shots       int
	actions     string // 逗号分隔的动作脚本，为空时按 shots 发射并装填
	seed        int64
	maxTicks    int // 每发炮弹最多模拟的主 tick 数
	trace       bool
	physicsPath string
	levelsPath  string
}

func main() {
	var opts options
	flag.Float64Var(&opts.aimX, "x", 3, "瞄准点 X（世界坐标）")
	flag.Float64Var(&opts.aimY, "y", 2, "瞄准点 Y（世界坐标）")
	flag.IntVar(&opts.power, "power", 0, "力度调整档数（每档 0.1）")
	flag.IntVar(&opts.shots, "shots", 1, "发射次数")
	flag.StringVar(&opts.actions, "actions", "", "动作脚本，如 increase-angle,fire,reload,fire")
	flag.Int64Var(&opts.seed, "seed", 1, "随机种子")
	flag.IntVar(&opts.maxTicks, "max-ticks", 2000, "每发炮弹最多模拟的主 tick 数")
	flag.BoolVar(&opts.trace, "trace", false, "打印每个主 tick 的位置")
	flag.StringVar(&opts.physicsPath, "physics", "", "物理配置文件路径")
	flag.StringVar(&opts.levelsPath, "levels", "", "关卡配置文件路径")
	verbose := flag.Bool("verbose", false, "显示详细调试信息")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

// parseActions 解析逗号分隔的动作脚本
func parseActions(script string) ([]types.Action, error) {
	var actions []types.Action
	for _, name := range strings.Split(script, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a := types.ParseAction(name)
		if a == types.ActionNone {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// script 返回要执行的动作序列
// 没有指定脚本时每发炮弹发射后装填
func (o options) script() ([]types.Action, error) {
	if o.actions != "" {
		return parseActions(o.actions)
	}
	var actions []types.Action
	for i := 0; i < o.shots; i++ {
		actions = append(actions, types.ActionFire, types.ActionReload)
	}
	return actions, nil
}

// run 执行模拟并把结果写到 out
func run(opts options, out io.Writer) error {
	actions, err := opts.script()
	if err != nil {
		return err
	}

	physics, levels, err := config.LoadGameConfig(opts.physicsPath, opts.levelsPath)
	if err != nil {
		return err
	}

	gs := game.NewGameState(physics, levels, rand.New(rand.NewSource(opts.seed)))
	clock := utils.NewManualClock(0)
	sim := systems.NewSimulation(gs, clock.Now())

	sim.AimAt(opts.aimX, opts.aimY)
	for i := 0; i < abs(opts.power); i++ {
		if opts.power > 0 {
			sim.Handle(types.ActionIncreasePower)
		} else {
			sim.Handle(types.ActionDecreasePower)
		}
	}

	step := physics.Ticks.PrimaryInterval()
	shot := 0
	for _, action := range actions {
		if gs.IsGameOver() || sim.Finished() {
			break
		}
		if action != types.ActionFire {
			if !sim.Handle(action) {
				fmt.Fprintf(out, "  %s rejected\n", action)
			}
			continue
		}

		shot++
		snap := sim.Snapshot()
		fmt.Fprintf(out, "shot %d: angle=%.1f speed=%.2f wind=%.4f mode=%s level=%d lives=%d\n",
			shot, snap.Aim.Angle, snap.Aim.Speed, gs.Projectile.Friction, snap.Mode, snap.Level, snap.Lives)

		if !sim.Handle(types.ActionFire) {
			fmt.Fprintln(out, "  fire rejected")
			continue
		}

		for tick := 0; tick < opts.maxTicks; tick++ {
			clock.Advance(step)
			due := sim.Update(clock.Now())

			for _, e := range sim.Events() {
				p := gs.Projectile
				fmt.Fprintf(out, "  t=%v %-14s x=%.3f y=%.3f score=%d\n", clock.Now(), e, p.X, p.Y, gs.Level.Score)
			}
			if opts.trace && due.Primary {
				p := gs.Projectile
				fmt.Fprintf(out, "    %v x=%.3f y=%.3f vx=%.4f vy=%.4f\n", clock.Now(), p.X, p.Y, p.VX, p.VY)
			}

			if gs.ShotSpent() || gs.IsGameOver() {
				break
			}
		}
	}

	// 把尚未结算的慢 tick 跑完，游戏结束判定在慢 tick 上
	clock.Advance(physics.Ticks.SlowInterval())
	sim.Update(clock.Now())
	for _, e := range sim.Events() {
		fmt.Fprintf(out, "  t=%v %s\n", clock.Now(), e)
	}

	final := sim.Snapshot()
	fmt.Fprintf(out, "result: mode=%s level=%d score=%d lives=%d won=%v game_over=%v\n",
		final.Mode, final.Level, final.Score, final.Lives, final.Won, final.GameOver)
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
