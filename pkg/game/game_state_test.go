package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/types"
)

const epsilon = 1e-9

func newTestState(t *testing.T) *GameState {
	t.Helper()
	return NewGameState(config.DefaultPhysicsConfig(), config.DefaultLevelConfig(), rand.New(rand.NewSource(42)))
}

// TestNewGameStateDefaults 测试开局状态
func TestNewGameStateDefaults(t *testing.T) {
	gs := NewGameState(nil, nil, nil)

	if gs.Level.Mode != types.ModeCannon || gs.Level.Level != 1 || gs.Level.Lives != 3 ||
		gs.Level.Difficulty != 1 || gs.Level.Score != 0 {
		t.Errorf("unexpected initial level state: %+v", gs.Level)
	}
	if gs.Level.Gravity != 0.1 || gs.Level.BaseGravity != 0.1 {
		t.Errorf("gravity = %v/%v, want 0.1", gs.Level.Gravity, gs.Level.BaseGravity)
	}
	if gs.Level.Barriers.UpY != 6 || gs.Level.Barriers.DownY != -6 {
		t.Errorf("barriers = %+v, want off screen", gs.Level.Barriers)
	}
	if gs.Aim.Angle != 43.5 || gs.Aim.Speed != 0.7 {
		t.Errorf("aim = %+v", gs.Aim)
	}
	if gs.Projectile.InFlight || gs.Projectile.Restitution != 1 {
		t.Errorf("projectile = %+v", gs.Projectile)
	}
	if gs.Secondary.X != 3.0 || gs.Secondary.Y != -3.7 || gs.Secondary.BounceVelocity != 1.4 {
		t.Errorf("secondary = %+v", gs.Secondary)
	}
	if len(gs.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(gs.Targets))
	}
}

// TestTrackMuzzle 测试未发射时炮弹跟随炮口
func TestTrackMuzzle(t *testing.T) {
	gs := newTestState(t)

	if math.Abs(gs.Projectile.X-(-5.5)) > epsilon || math.Abs(gs.Projectile.Y-(-2.7)) > epsilon {
		t.Errorf("muzzle at offset 0 = (%v, %v), want (-5.5, -2.7)", gs.Projectile.X, gs.Projectile.Y)
	}

	// 旋转 90 度：炮口偏移 (0.9, 0.7) 变为 (-0.7, 0.9)
	gs.Aim.Offset = 18
	gs.Aim.Angle = 135
	gs.TrackMuzzle()
	if math.Abs(gs.Projectile.X-(-7.1)) > epsilon || math.Abs(gs.Projectile.Y-(-2.5)) > epsilon {
		t.Errorf("muzzle rotated = (%v, %v), want (-7.1, -2.5)", gs.Projectile.X, gs.Projectile.Y)
	}

	vx, vy := gs.Aim.Components()
	if gs.Projectile.VX != vx || gs.Projectile.VY != vy {
		t.Error("velocity does not mirror aim vector")
	}

	// 飞行中不再跟随
	gs.Projectile.InFlight = true
	gs.Projectile.X = 1
	gs.TrackMuzzle()
	if gs.Projectile.X != 1 {
		t.Error("TrackMuzzle moved a projectile in flight")
	}
}

// TestActiveTargets 测试每个模式下有效的目标
func TestActiveTargets(t *testing.T) {
	tests := []struct {
		mode types.Mode
		want []string
	}{
		{types.ModeCannon, []string{"A"}},
		{types.ModeBlower, []string{"B"}},
		{types.ModeShooter, nil},
		{types.ModeShooterBlower, nil},
		{types.ModeGameOver, nil},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			gs := newTestState(t)
			gs.Level.Mode = tt.mode

			got := gs.ActiveTargets()
			if len(got) != len(tt.want) {
				t.Fatalf("ActiveTargets() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("target[%d] = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

// TestRandomFriction 测试风力范围
func TestRandomFriction(t *testing.T) {
	gs := newTestState(t)
	for i := 0; i < 200; i++ {
		f := gs.RandomFriction()
		if f < 0 || f >= 0.03 {
			t.Fatalf("friction %v out of [0, 0.03)", f)
		}
		steps := f / 0.001
		if math.Abs(steps-math.Round(steps)) > 1e-6 {
			t.Fatalf("friction %v is not a multiple of 0.001", f)
		}
	}
}

// TestSnapshot 测试快照派生值
func TestSnapshot(t *testing.T) {
	gs := newTestState(t)
	gs.Aim.Speed = 1.26
	gs.Projectile.Friction = 0.017
	gs.Level.Mode = types.ModeBlower

	snap := gs.Snapshot()
	if snap.PowerBars != 13 {
		t.Errorf("PowerBars = %d, want 13", snap.PowerBars)
	}
	if snap.WindBars != 17 {
		t.Errorf("WindBars = %d, want 17", snap.WindBars)
	}
	if !snap.BarriersActive || !snap.BlowerActive || snap.SecondaryActive {
		t.Errorf("capability flags wrong for blower: %+v", snap)
	}

	// 快照是副本
	snap.Targets[0].X = 100
	if gs.Targets[1].X == 100 {
		t.Error("snapshot shares target storage with state")
	}
}

// TestEnterGameOver 测试进入游戏结束只生效一次
func TestEnterGameOver(t *testing.T) {
	gs := newTestState(t)
	gs.EnterGameOver(true)
	gs.Level.GameOverTicks = 5
	gs.EnterGameOver(false)

	if !gs.IsGameOver() || !gs.Level.Won || gs.Level.GameOverTicks != 5 {
		t.Errorf("level state = %+v", gs.Level)
	}
}

// TestShotSpent 测试炮弹是否已无法命中
func TestShotSpent(t *testing.T) {
	tests := []struct {
		name     string
		inFlight bool
		settled  bool
		x, y     float64
		want     bool
	}{
		{"未发射", false, false, 9, 0, false},
		{"飞行中", true, false, 0, 0, false},
		{"飞出顶部", true, false, 3, 5, false},
		{"飞出右侧", true, false, 8.5, 0, true},
		{"飞出左侧", true, false, -8.5, 0, true},
		{"落到底部以下", true, false, 0, -4.5, true},
		{"静止", true, true, 0, -3.74, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(nil, nil, nil)
			gs.Projectile.InFlight = tt.inFlight
			gs.Projectile.Settled = tt.settled
			gs.Projectile.X, gs.Projectile.Y = tt.x, tt.y
			if got := gs.ShotSpent(); got != tt.want {
				t.Errorf("ShotSpent() = %v, want %v", got, tt.want)
			}
		})
	}
}
