package config

import (
	"os"

	"github.com/decker502/artillery/pkg/embedded"
)

// readConfigFile 读取配置文件内容
// 嵌入资源中存在时优先使用嵌入版本，否则读取磁盘文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadGameConfig 加载物理配置和关卡配置
//
// 路径为空时使用内嵌的默认文件；内嵌资源未初始化（如命令行工具）时使用内置默认值。
//
// 参数：
//   - physicsPath: 物理配置路径，可为空
//   - levelsPath: 关卡配置路径，可为空
//
// 返回：
//   - *PhysicsConfig, *LevelConfig: 加载后的配置
//   - error: 任一文件读取或验证失败时返回错误
func LoadGameConfig(physicsPath, levelsPath string) (*PhysicsConfig, *LevelConfig, error) {
	physics := DefaultPhysicsConfig()
	if physicsPath == "" && embedded.Exists(PhysicsConfigPath) {
		physicsPath = PhysicsConfigPath
	}
	if physicsPath != "" {
		cfg, err := LoadPhysicsConfig(physicsPath)
		if err != nil {
			return nil, nil, err
		}
		physics = cfg
	}

	levels := DefaultLevelConfig()
	if levelsPath == "" && embedded.Exists(LevelConfigPath) {
		levelsPath = LevelConfigPath
	}
	if levelsPath != "" {
		cfg, err := LoadLevelConfig(levelsPath)
		if err != nil {
			return nil, nil, err
		}
		levels = cfg
	}

	return physics, levels, nil
}
