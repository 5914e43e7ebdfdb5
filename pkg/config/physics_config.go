package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// PhysicsConfigPath 内嵌物理配置文件路径
const PhysicsConfigPath = "data/physics.yaml"

// PhysicsConfig 物理模拟常量
//
// 所有坐标使用世界单位（屏幕中心为原点，X 向右，Y 向上）。
// 这些数值决定了手感，修改前请确认对关卡的影响。
//
// 配置文件位置: data/physics.yaml
type PhysicsConfig struct {
	// TickStep 每个主物理 tick 推进的虚拟时间（固定 0.2）
	TickStep float64 `yaml:"tickStep"`

	// DefaultGravity 默认重力常量
	DefaultGravity float64 `yaml:"defaultGravity"`

	// Damping 落地反弹的阻尼系数，每次落地反弹系数乘以 Damping²
	Damping float64 `yaml:"damping"`

	// SettleThreshold 落地后竖直速度低于该值视为静止
	SettleThreshold float64 `yaml:"settleThreshold"`

	// SettledFriction 静止后地面滚动摩擦
	SettledFriction float64 `yaml:"settledFriction"`

	Wind       WindConfig       `yaml:"wind"`
	Floor      FloorConfig      `yaml:"floor"`
	World      WorldConfig      `yaml:"world"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Secondary  SecondaryConfig  `yaml:"secondary"`
	Cannon     CannonConfig     `yaml:"cannon"`
	Barrier    BarrierConfig    `yaml:"barrier"`
	Blower     BlowerConfig     `yaml:"blower"`
	Ticks      TickConfig       `yaml:"ticks"`
	Camera     CameraConfig     `yaml:"camera"`
}

// WindConfig 风力（水平摩擦）随机化配置
// 每次装填时摩擦取 rand[0, Steps) * Unit
type WindConfig struct {
	Steps int     `yaml:"steps"`
	Unit  float64 `yaml:"unit"`
}

// FloorConfig 地面
type FloorConfig struct {
	ContactY float64 `yaml:"contactY"` // Y <= ContactY 视为触地
	RestY    float64 `yaml:"restY"`    // 触地后钳制到的高度
}

// WorldConfig 世界边界（超出只触发装填提示）
type WorldConfig struct {
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`
}

// ProjectileConfig 炮弹
type ProjectileConfig struct {
	Radius float64 `yaml:"radius"`
}

// SecondaryConfig 副球体（发射台上弹跳的球）
type SecondaryConfig struct {
	Radius          float64 `yaml:"radius"`
	StartX          float64 `yaml:"startX"`
	StartY          float64 `yaml:"startY"`
	FloorY          float64 `yaml:"floorY"`
	RestY           float64 `yaml:"restY"`
	InitialVelocity float64 `yaml:"initialVelocity"`
}

// CannonConfig 加农炮与瞄准限制
type CannonConfig struct {
	OriginX float64 `yaml:"originX"`
	OriginY float64 `yaml:"originY"`
	// MuzzleX/MuzzleY 炮口相对炮座的偏移（随瞄准偏移旋转）
	MuzzleX float64 `yaml:"muzzleX"`
	MuzzleY float64 `yaml:"muzzleY"`

	BaseAngle      float64 `yaml:"baseAngle"`      // 偏移为 0 时的角度
	DegreesPerStep float64 `yaml:"degreesPerStep"` // 每单位偏移对应的角度
	InitialAngle   float64 `yaml:"initialAngle"`
	InitialSpeed   float64 `yaml:"initialSpeed"`

	OffsetStep float64 `yaml:"offsetStep"`
	MinOffset  float64 `yaml:"minOffset"`
	MaxOffset  float64 `yaml:"maxOffset"`

	SpeedStep float64 `yaml:"speedStep"`
	MinSpeed  float64 `yaml:"minSpeed"`
	MaxSpeed  float64 `yaml:"maxSpeed"`

	MaxPointerAngle float64 `yaml:"maxPointerAngle"`
}

// BarrierConfig 鼓风机关卡的两块挡板
type BarrierConfig struct {
	// X 炮弹中心触发反弹的横坐标（挡板左边缘减去炮弹半径）
	X       float64 `yaml:"x"`
	GapLow  float64 `yaml:"gapLow"`  // 间隙下沿，Y <= GapLow 会撞到下挡板
	GapHigh float64 `yaml:"gapHigh"` // 间隙上沿，Y >= GapHigh 会撞到上挡板

	StartUpY   float64 `yaml:"startUpY"`
	StartDownY float64 `yaml:"startDownY"`
	UpLimit    float64 `yaml:"upLimit"`
	DownLimit  float64 `yaml:"downLimit"`
	UpStep     float64 `yaml:"upStep"`
	DownStep   float64 `yaml:"downStep"`
}

// BlowerConfig 上升气流带
type BlowerConfig struct {
	BandX   float64 `yaml:"bandX"`
	Gravity float64 `yaml:"gravity"`
	Ticks   int     `yaml:"ticks"`
}

// TickConfig 三个独立 tick 的节拍
type TickConfig struct {
	PrimaryMs     int `yaml:"primaryMs"`
	SlowMs        int `yaml:"slowMs"`
	SecondaryMs   int `yaml:"secondaryMs"`
	GameOverTicks int `yaml:"gameOverTicks"` // 游戏结束后经过多少个慢 tick 退出
	ArrowFrames   int `yaml:"arrowFrames"`   // 鼓风机箭头动画帧数
}

// CameraConfig 缩放/平移步长
type CameraConfig struct {
	ZoomStep   float64 `yaml:"zoomStep"`
	PanStep    float64 `yaml:"panStep"`
	ScrollZoom float64 `yaml:"scrollZoom"`
	// 缩放上限必须小于世界半高，否则视口会翻转
	MinZoom float64 `yaml:"minZoom"`
	MaxZoom float64 `yaml:"maxZoom"`
}

// PrimaryInterval 主物理 tick 间隔
func (t TickConfig) PrimaryInterval() time.Duration {
	return time.Duration(t.PrimaryMs) * time.Millisecond
}

// SlowInterval 慢 tick 间隔
func (t TickConfig) SlowInterval() time.Duration {
	return time.Duration(t.SlowMs) * time.Millisecond
}

// SecondaryInterval 副球体默认 tick 间隔
func (t TickConfig) SecondaryInterval() time.Duration {
	return time.Duration(t.SecondaryMs) * time.Millisecond
}

// DefaultPhysicsConfig 返回内置的物理常量
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		TickStep:        0.2,
		DefaultGravity:  0.1,
		Damping:         0.7,
		SettleThreshold: 0.1,
		SettledFriction: 0.03,
		Wind:            WindConfig{Steps: 30, Unit: 0.001},
		Floor:           FloorConfig{ContactY: -3.75, RestY: -3.74},
		World:           WorldConfig{HalfWidth: 8, HalfHeight: 4},
		Projectile:      ProjectileConfig{Radius: 0.3354},
		Secondary: SecondaryConfig{
			Radius:          0.3535,
			StartX:          3.0,
			StartY:          -3.7,
			FloorY:          -3.71,
			RestY:           -3.70,
			InitialVelocity: 1.4,
		},
		Cannon: CannonConfig{
			OriginX:         -6.4,
			OriginY:         -3.4,
			MuzzleX:         0.9,
			MuzzleY:         0.7,
			BaseAngle:       45,
			DegreesPerStep:  5,
			InitialAngle:    43.5,
			InitialSpeed:    0.7,
			OffsetStep:      0.5,
			MinOffset:       -9,
			MaxOffset:       9.5,
			SpeedStep:       0.1,
			MinSpeed:        0,
			MaxSpeed:        2.0,
			MaxPointerAngle: 90,
		},
		Barrier: BarrierConfig{
			X:          0.55,
			GapLow:     -1.0,
			GapHigh:    0.07,
			StartUpY:   6,
			StartDownY: -6,
			UpLimit:    2.1,
			DownLimit:  -3.5,
			UpStep:     0.05,
			DownStep:   0.04,
		},
		Blower: BlowerConfig{BandX: 2.0, Gravity: -0.2, Ticks: 3},
		Ticks: TickConfig{
			PrimaryMs:     10,
			SlowMs:        200,
			SecondaryMs:   20,
			GameOverTicks: 20,
			ArrowFrames:   5,
		},
		Camera: CameraConfig{ZoomStep: 0.5, PanStep: 0.5, ScrollZoom: 0.5, MinZoom: -4, MaxZoom: 3.5},
	}
}

// LoadPhysicsConfig 加载物理配置
//
// 优先从内嵌资源读取，找不到时回退到磁盘文件。
// 文件中未出现的字段保留 DefaultPhysicsConfig 的值。
//
// 参数:
//   - path: 配置文件路径（如 "data/physics.yaml"）
//
// 返回:
//   - *PhysicsConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPhysicsConfig(path string) (*PhysicsConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read physics config: %w", err)
	}

	cfg, err := ParsePhysicsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsePhysicsConfig 从 YAML 数据解析物理配置
func ParsePhysicsConfig(data []byte) (*PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 只检查会让模拟失去意义的取值（非正步长、颠倒的区间等），
// 具体数值的手感由关卡设计负责。
func (c *PhysicsConfig) Validate() error {
	if c.TickStep <= 0 {
		return fmt.Errorf("tickStep must be positive, got %v", c.TickStep)
	}

	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("damping must be in (0, 1), got %v", c.Damping)
	}

	if c.SettleThreshold <= 0 {
		return fmt.Errorf("settleThreshold must be positive, got %v", c.SettleThreshold)
	}

	if c.Wind.Steps < 1 {
		return fmt.Errorf("wind.steps must be at least 1, got %d", c.Wind.Steps)
	}

	if c.Floor.RestY <= c.Floor.ContactY {
		return fmt.Errorf("floor.restY (%v) must be above floor.contactY (%v)", c.Floor.RestY, c.Floor.ContactY)
	}

	if c.Secondary.RestY <= c.Secondary.FloorY {
		return fmt.Errorf("secondary.restY (%v) must be above secondary.floorY (%v)", c.Secondary.RestY, c.Secondary.FloorY)
	}

	if c.Projectile.Radius <= 0 || c.Secondary.Radius <= 0 {
		return fmt.Errorf("radii must be positive")
	}

	if c.Cannon.MinOffset > c.Cannon.MaxOffset {
		return fmt.Errorf("cannon offset range invalid: min(%.1f) > max(%.1f)", c.Cannon.MinOffset, c.Cannon.MaxOffset)
	}

	if c.Cannon.MinSpeed > c.Cannon.MaxSpeed {
		return fmt.Errorf("cannon speed range invalid: min(%.1f) > max(%.1f)", c.Cannon.MinSpeed, c.Cannon.MaxSpeed)
	}

	if c.Barrier.GapLow >= c.Barrier.GapHigh {
		return fmt.Errorf("barrier gap invalid: low(%.2f) >= high(%.2f)", c.Barrier.GapLow, c.Barrier.GapHigh)
	}

	if c.Blower.Ticks < 1 {
		return fmt.Errorf("blower.ticks must be at least 1, got %d", c.Blower.Ticks)
	}

	if c.Camera.MaxZoom >= c.World.HalfHeight || c.Camera.MinZoom > c.Camera.MaxZoom {
		return fmt.Errorf("camera zoom range invalid: [%.1f, %.1f]", c.Camera.MinZoom, c.Camera.MaxZoom)
	}

	if c.Ticks.PrimaryMs <= 0 || c.Ticks.SlowMs <= 0 || c.Ticks.SecondaryMs <= 0 {
		return fmt.Errorf("tick intervals must be positive")
	}

	return nil
}
