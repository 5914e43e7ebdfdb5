package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
)

const epsilon = 1e-9

// newTestGameState 使用内置配置和固定种子创建游戏状态
func newTestGameState(t *testing.T) *game.GameState {
	t.Helper()
	return game.NewGameState(config.DefaultPhysicsConfig(), config.DefaultLevelConfig(), rand.New(rand.NewSource(7)))
}

// launchAt 发射后把炮弹放到指定位置
func launchAt(t *testing.T, gs *game.GameState, x, y float64) {
	t.Helper()
	if !gs.FireShot() {
		t.Fatal("FireShot() rejected")
	}
	gs.Projectile.X, gs.Projectile.Y = x, y
	gs.Projectile.VX, gs.Projectile.VY = 0, 0
}
