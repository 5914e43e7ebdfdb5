package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/artillery/pkg/app"
	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	physicsPath := flag.String("physics", "", "物理配置文件路径（默认使用内嵌配置）")
	levelsPath := flag.String("levels", "", "关卡配置文件路径（默认使用内嵌配置）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		PhysicsPath: *physicsPath,
		LevelsPath:  *levelsPath,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Artillery")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if gameApp.Settings().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
