package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/parktycoon/pkg/app"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "公园配置文件路径（默认 data/park.yaml）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		ParkConfigPath: *configPath,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("启动失败: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("[Main] Game loop ended: %v", err)
	}
}
