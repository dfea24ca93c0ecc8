package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/spacejusticiar/pkg/app"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志")
	dataDir := flag.String("data", "", "从磁盘目录加载 data/*.yaml（目录需包含 data/ 子目录），默认使用嵌入的配置")
	telemetryAddr := flag.String("telemetry", "", "遥测服务监听地址，如 127.0.0.1:6060")
	flag.Parse()

	if *dataDir != "" {
		embedded.InitFS(os.DirFS(*dataDir))
	} else {
		embedded.Init(dataFS)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		TelemetryAddr: *telemetryAddr,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Space Justiciar")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}
