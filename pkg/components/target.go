package components

import "math"

// Target 固定目标：锚点 + 半径
type Target struct {
	ID     string
	X, Y   float64
	Radius float64
}

// Distance 计算两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return hypot(x1-x2, y1-y2)
}

func hypot(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
