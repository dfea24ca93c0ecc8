package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/embedded"
)

func main() {
	root := flag.String("root", ".", "包含 data/ 目录的项目根目录")
	starPath := flag.String("stars", "data/star_system.yaml", "星系配置路径")
	gameplayPath := flag.String("gameplay", "data/gameplay.yaml", "玩法参数路径")
	flag.Parse()

	embedded.InitFS(os.DirFS(*root))

	system, err := config.LoadStarSystemConfig(*starPath)
	if err != nil {
		fmt.Printf("❌ 星系配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 星系 %q: %d 个天体\n", system.Name, len(system.Bodies))
	for _, b := range system.Bodies {
		period := "-"
		if b.OrbitSpeed != 0 {
			period = fmt.Sprintf("%.1fs", 2*math.Pi/math.Abs(b.OrbitSpeed))
		}
		home := ""
		if b.Home {
			home = " (home)"
		}
		fmt.Printf("   %-8s %-6s parent=%-8s scale=%-5.1f influence=%-6.1f period=%s%s\n",
			b.Name, b.Kind, b.Parent, b.Scale, b.InfluenceRadius(), period, home)
	}

	gameplay, err := config.LoadGameplayConfig(*gameplayPath)
	if err != nil {
		fmt.Printf("❌ 玩法参数无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 玩法参数: 加速度 %.1f, 鱼雷速度 %.1f, 发射间隔 %.1fs\n",
		gameplay.Player.Acceleration, gameplay.Combat.TorpedoSpeed, gameplay.Combat.LauncherPeriod)

	home := system.HomeBody()
	if home == nil {
		fmt.Printf("❌ 没有母星\n")
		os.Exit(1)
	}
	spawn := home.Scale * gameplay.Combat.LauncherDistance
	if spawn <= home.InfluenceRadius() {
		fmt.Printf("⚠️  鱼雷生成距离 %.1f 在 %s 的影响范围 %.1f 之内\n", spawn, home.Name, home.InfluenceRadius())
	}
}
