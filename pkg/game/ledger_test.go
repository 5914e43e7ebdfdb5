package game

import (
	"testing"

	"github.com/decker502/artillery/pkg/types"
)

// TestFireShot 测试发射扣除生命
func TestFireShot(t *testing.T) {
	gs := newTestState(t)

	if !gs.FireShot() {
		t.Fatal("first FireShot() rejected")
	}
	if gs.Level.Lives != 2 || !gs.Projectile.InFlight {
		t.Errorf("after fire: lives=%d inFlight=%v", gs.Level.Lives, gs.Projectile.InFlight)
	}

	// 飞行中不能再次发射
	if gs.FireShot() {
		t.Error("FireShot() accepted while in flight")
	}
	if gs.Level.Lives != 2 {
		t.Errorf("lives changed by rejected shot: %d", gs.Level.Lives)
	}
}

// TestLivesNeverNegative 测试生命单调递减且不为负
func TestLivesNeverNegative(t *testing.T) {
	gs := newTestState(t)

	prev := gs.Level.Lives
	for i := 0; i < 10; i++ {
		gs.FireShot()
		if gs.Level.Lives > prev || gs.Level.Lives < 0 {
			t.Fatalf("iteration %d: lives %d (previous %d)", i, gs.Level.Lives, prev)
		}
		prev = gs.Level.Lives
		gs.Reload()
	}

	if gs.Level.Lives != 0 {
		t.Errorf("lives = %d, want 0", gs.Level.Lives)
	}
	if !gs.IsGameOver() {
		t.Error("reload with no lives must end the game")
	}
	if gs.FireShot() {
		t.Error("FireShot() accepted after game over")
	}
}

// TestReloadIdempotent 测试连续装填除风力外结果一致
func TestReloadIdempotent(t *testing.T) {
	gs := newTestState(t)
	gs.FireShot()
	gs.Projectile.X, gs.Projectile.Y = 2, -3.74
	gs.Projectile.Settled = true
	gs.Projectile.Restitution = 0.24
	gs.Blower = BlowerState{Ticks: 2}
	gs.Level.Gravity = -0.2

	gs.Reload()
	first := gs.Projectile
	firstLevel := gs.Level
	firstBlower := gs.Blower

	gs.Reload()
	second := gs.Projectile

	first.Friction, second.Friction = 0, 0
	if first != second {
		t.Errorf("projectile differs between reloads:\n%+v\n%+v", first, second)
	}
	if gs.Level != firstLevel || gs.Blower != firstBlower {
		t.Error("level or blower state differs between reloads")
	}

	if first.Restitution != 1 || first.InFlight || first.Settled {
		t.Errorf("reload did not reset flight: %+v", first)
	}
	if gs.Level.Gravity != gs.Level.BaseGravity {
		t.Errorf("gravity = %v, want base %v", gs.Level.Gravity, gs.Level.BaseGravity)
	}
	if gs.Blower != (BlowerState{}) {
		t.Errorf("blower override not cleared: %+v", gs.Blower)
	}
}

// TestAward 测试得分公式
func TestAward(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		lives      int
		want       int
	}{
		{"首关剩两条命", 1, 2, 15},
		{"难度2满命", 2, 3, 40},
		{"无剩余生命", 6, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t)
			gs.Level.Difficulty = tt.difficulty
			gs.Level.Lives = tt.lives
			gs.Level.Score = 100

			if got := gs.Award(); got != tt.want {
				t.Errorf("Award() = %d, want %d", got, tt.want)
			}
			if gs.Level.Score != 100+tt.want {
				t.Errorf("score = %d, want %d", gs.Level.Score, 100+tt.want)
			}
		})
	}
}

// TestReloadKeepsModeWhileLivesRemain 测试有生命时装填不结束游戏
func TestReloadKeepsModeWhileLivesRemain(t *testing.T) {
	gs := newTestState(t)
	gs.FireShot()
	gs.Reload()

	if gs.Level.Mode != types.ModeCannon {
		t.Errorf("mode = %v, want cannon", gs.Level.Mode)
	}
}
