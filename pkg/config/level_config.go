package config

import (
	"errors"
	"fmt"

	"github.com/decker502/artillery/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfigPath 内嵌关卡配置文件路径
const LevelConfigPath = "data/levels.yaml"

// TriggerSecondary 以副球体为碰撞目标的触发器名称
const TriggerSecondary = "secondary"

var (
	// ErrUnknownMode 配置中出现了枚举之外的模式名称
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownTrigger 转换触发器既不是目标ID也不是副球体
	ErrUnknownTrigger = errors.New("unknown trigger")
)

// LevelConfig 关卡配置数据结构
// 定义了初始状态、固定目标以及有序的关卡转换表
type LevelConfig struct {
	Initial      InitialState       `yaml:"initial"`
	ScorePerLife int                `yaml:"scorePerLife"` // 得分 = 难度 * ScorePerLife * (剩余生命 + 1)
	Targets      []TargetConfig     `yaml:"targets"`
	Transitions  []TransitionConfig `yaml:"transitions"` // 按顺序匹配，第一条命中的规则生效
}

// InitialState 开局状态
type InitialState struct {
	Mode            string  `yaml:"mode"`
	Level           int     `yaml:"level"`
	Lives           int     `yaml:"lives"`
	Difficulty      int     `yaml:"difficulty"`
	Gravity         float64 `yaml:"gravity"`
	SecondaryBounce float64 `yaml:"secondaryBounce"`

	StartMode types.Mode `yaml:"-"`
}

// TargetConfig 固定目标：锚点 + 半径
type TargetConfig struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// TransitionConfig 单条关卡转换规则
//
// 指针字段为 nil 表示"保持不变"。
type TransitionConfig struct {
	Name    string `yaml:"name"`
	From    string `yaml:"from"`
	Trigger string `yaml:"trigger"` // 目标ID 或 "secondary"
	Level   int    `yaml:"level"`   // 仅在当前关卡号等于该值时生效，0 表示任意关卡
	To      string `yaml:"to"`

	DifficultyBonus int      `yaml:"difficultyBonus"`
	Lives           *int     `yaml:"lives"`
	Gravity         *float64 `yaml:"gravity"` // 同时作为之后装填时恢复的基础重力
	ResetBarriers   bool     `yaml:"resetBarriers"`
	ResetSecondary  bool     `yaml:"resetSecondary"`
	SecondaryBounce *float64 `yaml:"secondaryBounce"` // 副球体落地重置速度
	SecondaryLaunch *float64 `yaml:"secondaryLaunch"` // 立即赋予副球体的上升速度
	SecondaryMs     int      `yaml:"secondaryMs"`     // 副球体 tick 间隔，0 表示不变
	Victory         bool     `yaml:"victory"`

	FromMode types.Mode `yaml:"-"`
	ToMode   types.Mode `yaml:"-"`
}

// AdvancesLevel 返回该转换是否推进关卡号
// 胜利转换停留在当前关卡
func (t *TransitionConfig) AdvancesLevel() bool {
	return !t.Victory
}

// Target 根据ID查找目标
func (c *LevelConfig) Target(id string) (TargetConfig, bool) {
	for _, t := range c.Targets {
		if t.ID == id {
			return t, true
		}
	}
	return TargetConfig{}, false
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// DefaultLevelConfig 返回内置关卡配置
//
// 关卡流程：
//
//	1 cannon --A--> 2 blower --B--> 3 shooter --secondary--> 4 shooter-blower
//	  --secondary--> 5 blower --B--> 胜利
func DefaultLevelConfig() *LevelConfig {
	cfg := &LevelConfig{
		Initial: InitialState{
			Mode:            "cannon",
			Level:           1,
			Lives:           3,
			Difficulty:      1,
			Gravity:         0.1,
			SecondaryBounce: 1.4,
		},
		ScorePerLife: 5,
		Targets: []TargetConfig{
			{ID: "A", X: 3, Y: 2, Radius: 0.4646},
			{ID: "B", X: 6, Y: 2, Radius: 0.4646},
		},
		Transitions: []TransitionConfig{
			{
				Name: "cannon-cleared", From: "cannon", Trigger: "A", To: "blower",
				DifficultyBonus: 1, Lives: intPtr(3),
			},
			{
				Name: "final-blower-cleared", From: "blower", Trigger: "B", Level: 5, To: "game-over",
				DifficultyBonus: 4, Victory: true,
			},
			{
				Name: "blower-cleared", From: "blower", Trigger: "B", To: "shooter",
				DifficultyBonus: 2, Lives: intPtr(5), Gravity: floatPtr(0.1),
			},
			{
				Name: "shooter-cleared", From: "shooter", Trigger: TriggerSecondary, Level: 3, To: "shooter-blower",
				DifficultyBonus: 3, Lives: intPtr(5), ResetBarriers: true, ResetSecondary: true,
				SecondaryBounce: floatPtr(1.8), SecondaryLaunch: floatPtr(1.8), SecondaryMs: 10,
			},
			{
				Name: "shooter-blower-cleared", From: "shooter-blower", Trigger: TriggerSecondary, To: "blower",
				DifficultyBonus: 4, Lives: intPtr(3), ResetBarriers: true, Gravity: floatPtr(0.2545),
				SecondaryLaunch: floatPtr(3.6),
			},
		},
	}

	// 内置配置总是合法的
	if err := validateLevelConfig(cfg); err != nil {
		panic(fmt.Sprintf("default level config invalid: %v", err))
	}
	return cfg
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	path - 关卡配置文件的路径（"data/" 开头时优先读取内嵌资源）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	// 应用默认值（向后兼容性）
	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	defaults := InitialState{Mode: "cannon", Level: 1, Lives: 3, Difficulty: 1, Gravity: 0.1, SecondaryBounce: 1.4}

	if config.Initial.Mode == "" {
		config.Initial.Mode = defaults.Mode
	}
	if config.Initial.Level == 0 {
		config.Initial.Level = defaults.Level
	}
	if config.Initial.Lives == 0 {
		config.Initial.Lives = defaults.Lives
	}
	if config.Initial.Difficulty == 0 {
		config.Initial.Difficulty = defaults.Difficulty
	}
	if config.Initial.Gravity == 0 {
		config.Initial.Gravity = defaults.Gravity
	}
	if config.Initial.SecondaryBounce == 0 {
		config.Initial.SecondaryBounce = defaults.SecondaryBounce
	}
	if config.ScorePerLife == 0 {
		config.ScorePerLife = 5
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性，并解析模式名称
func validateLevelConfig(config *LevelConfig) error {
	mode, ok := types.ParseMode(config.Initial.Mode)
	if !ok {
		return fmt.Errorf("initial.mode %q: %w", config.Initial.Mode, ErrUnknownMode)
	}
	if !mode.Playable() {
		return fmt.Errorf("initial.mode must be playable, got %q", config.Initial.Mode)
	}
	config.Initial.StartMode = mode

	if config.Initial.Lives < 1 {
		return fmt.Errorf("initial.lives must be at least 1, got %d", config.Initial.Lives)
	}

	if len(config.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}

	seen := make(map[string]bool, len(config.Targets))
	for i, target := range config.Targets {
		if target.ID == "" {
			return fmt.Errorf("targets[%d]: id is required", i)
		}
		if target.ID == TriggerSecondary {
			return fmt.Errorf("targets[%d]: id %q is reserved", i, TriggerSecondary)
		}
		if seen[target.ID] {
			return fmt.Errorf("targets[%d]: duplicate id %q", i, target.ID)
		}
		if target.Radius <= 0 {
			return fmt.Errorf("targets[%d]: radius must be positive, got %v", i, target.Radius)
		}
		seen[target.ID] = true
	}

	if len(config.Transitions) == 0 {
		return fmt.Errorf("at least one transition is required")
	}

	for i := range config.Transitions {
		tr := &config.Transitions[i]

		from, ok := types.ParseMode(tr.From)
		if !ok {
			return fmt.Errorf("transitions[%d] from %q: %w", i, tr.From, ErrUnknownMode)
		}
		if !from.Playable() {
			return fmt.Errorf("transitions[%d]: cannot transition out of %q", i, tr.From)
		}

		to, ok := types.ParseMode(tr.To)
		if !ok {
			return fmt.Errorf("transitions[%d] to %q: %w", i, tr.To, ErrUnknownMode)
		}

		if tr.Trigger != TriggerSecondary && !seen[tr.Trigger] {
			return fmt.Errorf("transitions[%d] trigger %q: %w", i, tr.Trigger, ErrUnknownTrigger)
		}
		if tr.Trigger == TriggerSecondary && !from.HasSecondaryBody() {
			return fmt.Errorf("transitions[%d]: mode %q has no secondary body", i, tr.From)
		}

		if tr.Victory != (to == types.ModeGameOver) {
			return fmt.Errorf("transitions[%d]: victory transitions must end in game-over and vice versa", i)
		}

		if tr.Lives != nil && *tr.Lives < 1 {
			return fmt.Errorf("transitions[%d]: lives must be at least 1, got %d", i, *tr.Lives)
		}

		if tr.SecondaryMs < 0 {
			return fmt.Errorf("transitions[%d]: secondaryMs cannot be negative", i)
		}

		tr.FromMode = from
		tr.ToMode = to
	}

	return nil
}
