package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/artillery/pkg/types"
)

// TestDefaultLevelConfig 测试内置关卡配置
func TestDefaultLevelConfig(t *testing.T) {
	cfg := DefaultLevelConfig()

	if cfg.Initial.StartMode != types.ModeCannon {
		t.Errorf("StartMode = %v, want cannon", cfg.Initial.StartMode)
	}
	if cfg.Initial.Lives != 3 || cfg.Initial.Level != 1 || cfg.Initial.Difficulty != 1 {
		t.Errorf("Initial = %+v, want lives=3 level=1 difficulty=1", cfg.Initial)
	}

	a, ok := cfg.Target("A")
	if !ok || a.X != 3 || a.Y != 2 || a.Radius != 0.4646 {
		t.Errorf("Target(A) = %+v, %v", a, ok)
	}
	if _, ok := cfg.Target("C"); ok {
		t.Error("Target(C) should not exist")
	}

	// 最终胜利规则必须排在普通鼓风机规则之前
	finalIdx, blowerIdx := -1, -1
	for i, tr := range cfg.Transitions {
		switch tr.Name {
		case "final-blower-cleared":
			finalIdx = i
		case "blower-cleared":
			blowerIdx = i
		}
	}
	if finalIdx < 0 || blowerIdx < 0 || finalIdx > blowerIdx {
		t.Errorf("final rule index %d must precede blower rule index %d", finalIdx, blowerIdx)
	}
}

// TestEmbeddedLevelFileMatchesDefaults 测试 data/levels.yaml 与内置配置一致
func TestEmbeddedLevelFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadLevelConfig(filepath.Join("..", "..", "data", "levels.yaml"))
	if err != nil {
		t.Fatalf("LoadLevelConfig() error: %v", err)
	}

	want := DefaultLevelConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("data/levels.yaml differs from DefaultLevelConfig()\n got: %+v\nwant: %+v", cfg, want)
	}
}

// TestParseLevelConfig_Defaults 测试缺省字段的默认值
func TestParseLevelConfig_Defaults(t *testing.T) {
	yamlData := `
targets:
  - id: A
    x: 1
    y: 1
    radius: 0.5
transitions:
  - from: cannon
    trigger: A
    to: blower
`
	cfg, err := ParseLevelConfig([]byte(yamlData))
	if err != nil {
		t.Fatalf("ParseLevelConfig() error: %v", err)
	}

	if cfg.Initial.Lives != 3 || cfg.Initial.Level != 1 || cfg.ScorePerLife != 5 {
		t.Errorf("defaults not applied: %+v, scorePerLife=%d", cfg.Initial, cfg.ScorePerLife)
	}
	if cfg.Transitions[0].FromMode != types.ModeCannon || cfg.Transitions[0].ToMode != types.ModeBlower {
		t.Errorf("modes not resolved: %+v", cfg.Transitions[0])
	}
	if cfg.Transitions[0].Lives != nil {
		t.Error("omitted lives should stay nil (unchanged)")
	}
}

// TestParseLevelConfig_Invalid 测试非法配置
func TestParseLevelConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name: "未知模式",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}]
transitions: [{from: rect3flag, trigger: A, to: blower}]
`,
			wantErr: ErrUnknownMode,
		},
		{
			name: "未知触发器",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}]
transitions: [{from: cannon, trigger: Z, to: blower}]
`,
			wantErr: ErrUnknownTrigger,
		},
		{
			name: "副球体触发器用在无副球体模式",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}]
transitions: [{from: cannon, trigger: secondary, to: blower}]
`,
			wantMsg: "has no secondary body",
		},
		{
			name: "胜利规则未进入终止态",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}]
transitions: [{from: cannon, trigger: A, to: blower, victory: true}]
`,
			wantMsg: "victory",
		},
		{
			name: "从终止态转换",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}]
transitions: [{from: game-over, trigger: A, to: blower}]
`,
			wantMsg: "cannot transition out",
		},
		{
			name: "重复目标",
			yaml: `
targets: [{id: A, x: 1, y: 1, radius: 0.5}, {id: A, x: 2, y: 2, radius: 0.5}]
transitions: [{from: cannon, trigger: A, to: blower}]
`,
			wantMsg: "duplicate id",
		},
		{
			name:    "缺少转换",
			yaml:    `targets: [{id: A, x: 1, y: 1, radius: 0.5}]`,
			wantMsg: "at least one transition",
		},
		{
			name:    "YAML语法错误",
			yaml:    "targets: [",
			wantMsg: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseLevelConfig() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want errors.Is %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

// TestLoadLevelConfig_MissingFile 测试文件不存在
func TestLoadLevelConfig_MissingFile(t *testing.T) {
	_, err := LoadLevelConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
