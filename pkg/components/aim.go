package components

import "math"

// AimVector 瞄准向量（发射前可调整）
type AimVector struct {
	// Angle 发射角（度）
	Angle float64

	// Speed 发射速度大小
	Speed float64

	// Offset 炮管偏移档位，炮管旋转角 = Offset * 每档角度
	Offset float64
}

// Components 返回速度分量 (speed*cos, speed*sin)
func (a AimVector) Components() (vx, vy float64) {
	rad := a.Angle * math.Pi / 180.0
	return a.Speed * math.Cos(rad), a.Speed * math.Sin(rad)
}
