package systems

import (
	"testing"
	"time"

	"github.com/decker502/artillery/pkg/types"
	"github.com/decker502/artillery/pkg/utils"
)

const frame = 10 * time.Millisecond

func newTestSimulation(t *testing.T) (*Simulation, *utils.ManualClock) {
	t.Helper()
	clock := utils.NewManualClock(0)
	return NewSimulation(newTestGameState(t), clock.Now()), clock
}

// step 推进时钟并更新 n 次
func step(sim *Simulation, clock *utils.ManualClock, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(frame)
		sim.Update(clock.Now())
	}
}

// TestHitTargetAEndToEnd 测试首关击中 A
func TestHitTargetAEndToEnd(t *testing.T) {
	sim, clock := newTestSimulation(t)

	if !sim.Handle(types.ActionFire) {
		t.Fatal("fire rejected")
	}
	gs := sim.State()
	gs.Projectile.X, gs.Projectile.Y = 3, 2
	gs.Projectile.VX, gs.Projectile.VY = 0, 0

	step(sim, clock, 1)

	snap := sim.Snapshot()
	if snap.Mode != types.ModeBlower || snap.Level != 2 || snap.Lives != 3 || snap.Score != 15 || snap.Difficulty != 2 {
		t.Errorf("after hitting A: mode=%s level=%d lives=%d score=%d difficulty=%d",
			snap.Mode, snap.Level, snap.Lives, snap.Score, snap.Difficulty)
	}

	events := sim.Events()
	if len(events) != 2 || events[0] != types.EventFired || events[1] != types.EventLevelCleared {
		t.Errorf("events = %v", events)
	}
}

// TestLastLifeSettlesToGameOver 测试最后一条命落地后游戏结束
func TestLastLifeSettlesToGameOver(t *testing.T) {
	sim, clock := newTestSimulation(t)
	gs := sim.State()
	gs.Level.Lives = 1

	sim.Handle(types.ActionFire)
	gs.Projectile.X, gs.Projectile.Y = 0, -3.7
	gs.Projectile.VX, gs.Projectile.VY = 0, 0
	gs.Projectile.LaunchVY = 0.05

	step(sim, clock, 40)

	snap := sim.Snapshot()
	if !snap.Projectile.Settled {
		t.Fatal("projectile did not settle")
	}
	if !snap.GameOver || snap.Mode != types.ModeGameOver || snap.Won {
		t.Fatalf("expected defeat, got mode=%s won=%v", snap.Mode, snap.Won)
	}
	if sim.Handle(types.ActionFire) {
		t.Error("fire accepted after game over")
	}
	if sim.Handle(types.ActionReload) {
		t.Error("reload accepted after game over")
	}
	if snap.Lives != 0 {
		t.Errorf("lives = %d, want 0", snap.Lives)
	}

	if sim.Finished() {
		t.Error("finished too early")
	}
	step(sim, clock, 20*20)
	if !sim.Finished() {
		t.Error("simulation should finish after the game-over countdown")
	}
}

// TestLastLifeHighShotStillScores 测试最后一条命的高抛球飞出顶部后仍可命中
func TestLastLifeHighShotStillScores(t *testing.T) {
	sim, clock := newTestSimulation(t)
	gs := sim.State()
	gs.Level.Lives = 1

	sim.Handle(types.ActionFire)
	gs.Projectile.X, gs.Projectile.Y = 3, 5
	gs.Projectile.VX, gs.Projectile.VY = 0, 0

	// 在顶部之外停留超过一个慢 tick
	step(sim, clock, 25)
	if sim.Snapshot().GameOver {
		t.Fatal("game over while the shot is still falling back")
	}

	step(sim, clock, 35)

	snap := sim.Snapshot()
	if snap.GameOver || snap.Mode != types.ModeBlower {
		t.Fatalf("mode = %s, want blower", snap.Mode)
	}
	if snap.Level != 2 || snap.Lives != 3 || snap.Score != 5 {
		t.Errorf("level=%d lives=%d score=%d, want 2/3/5", snap.Level, snap.Lives, snap.Score)
	}
}

// TestLastLifeLeavingSideIsGameOver 测试最后一条命从侧面飞出后游戏结束
func TestLastLifeLeavingSideIsGameOver(t *testing.T) {
	sim, clock := newTestSimulation(t)
	gs := sim.State()
	gs.Level.Lives = 1

	sim.Handle(types.ActionFire)
	gs.Projectile.X, gs.Projectile.Y = 8.5, 0
	gs.Projectile.VX, gs.Projectile.VY = 0.5, 0

	step(sim, clock, 25)

	snap := sim.Snapshot()
	if !snap.GameOver || snap.Won {
		t.Errorf("mode = %s won=%v, want defeat", snap.Mode, snap.Won)
	}
}

// TestPrimaryTickRunsBeforeSlowTick 测试同一次 Update 中主 tick 先执行
func TestPrimaryTickRunsBeforeSlowTick(t *testing.T) {
	sim, clock := newTestSimulation(t)
	gs := sim.State()
	gs.Level.Lives = 1

	sim.Handle(types.ActionFire)
	gs.Projectile.X, gs.Projectile.Y = 0, -3.749
	gs.Projectile.VX, gs.Projectile.VY = 0, 0.1
	gs.Projectile.Descending = true
	gs.Projectile.LaunchVY = 0.05

	// 一次跳到 200ms：主 tick 让炮弹静止，慢 tick 随即判定结束
	clock.Advance(200 * time.Millisecond)
	due := sim.Update(clock.Now())

	if !due.Primary || !due.Slow || !due.Secondary {
		t.Fatalf("due = %+v, want all ticks", due)
	}
	if !gs.IsGameOver() {
		t.Error("slow tick did not observe the settle from the same update")
	}
}

// TestTickCadence 测试三个节拍的频率
func TestTickCadence(t *testing.T) {
	sim, clock := newTestSimulation(t)

	var primary, slow, secondary int
	for i := 0; i < 100; i++ {
		clock.Advance(frame)
		due := sim.Update(clock.Now())
		if due.Primary {
			primary++
		}
		if due.Slow {
			slow++
		}
		if due.Secondary {
			secondary++
		}
	}

	if primary != 100 || slow != 5 || secondary != 50 {
		t.Errorf("ticks in 1s: primary=%d slow=%d secondary=%d, want 100/5/50", primary, slow, secondary)
	}
}

// TestHandleCamera 测试镜头动作
func TestHandleCamera(t *testing.T) {
	sim, _ := newTestSimulation(t)

	for i := 0; i < 20; i++ {
		sim.Handle(types.ActionZoomIn)
	}
	sim.Handle(types.ActionPanRight)
	sim.Scroll(-1)

	cam := sim.Snapshot().Camera
	if cam.Zoom != 3.0 || cam.Pan != 0.5 {
		t.Errorf("camera = %+v, want zoom 3.0 pan 0.5", cam)
	}
}

// TestQuit 测试退出
func TestQuit(t *testing.T) {
	sim, _ := newTestSimulation(t)
	if sim.Finished() {
		t.Fatal("new simulation already finished")
	}
	sim.Handle(types.ActionQuit)
	if !sim.Finished() {
		t.Error("quit did not finish the simulation")
	}
}

// TestReloadAction 测试装填动作
func TestReloadAction(t *testing.T) {
	sim, clock := newTestSimulation(t)
	sim.Handle(types.ActionFire)
	step(sim, clock, 5)

	if !sim.Handle(types.ActionReload) {
		t.Fatal("reload rejected")
	}
	snap := sim.Snapshot()
	if snap.Projectile.InFlight || snap.Lives != 2 {
		t.Errorf("after reload: inFlight=%v lives=%d", snap.Projectile.InFlight, snap.Lives)
	}
	if snap.WindBars < 0 || snap.WindBars >= 30 {
		t.Errorf("WindBars = %d out of range", snap.WindBars)
	}
}
