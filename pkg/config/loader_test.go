package config

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

// TestLoadGameConfig 测试组合加载
func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		physicsPath string
		levelsPath  string
	}{
		{"内置默认值", "", ""},
		{"磁盘文件", "../../data/physics.yaml", "../../data/levels.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physics, levels, err := LoadGameConfig(tt.physicsPath, tt.levelsPath)
			if err != nil {
				t.Fatalf("LoadGameConfig() error: %v", err)
			}
			if !reflect.DeepEqual(physics, DefaultPhysicsConfig()) {
				t.Errorf("physics differs from defaults: %+v", physics)
			}
			if !reflect.DeepEqual(levels, DefaultLevelConfig()) {
				t.Errorf("levels differ from defaults")
			}
		})
	}
}

// TestLoadGameConfig_MissingFile 测试文件不存在时返回错误
func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, _, err := LoadGameConfig("", "does/not/exist.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
