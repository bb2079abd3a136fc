// Command voxelgen runs the streaming engine headlessly: one simulated
// loader orbits the origin while the engine streams, generates, and
// meshes terrain around it, logging throughput once a second. There is
// no window, no GL context, nothing to draw to — just the generation
// pipeline running against a synthetic loader position.
package main

import (
	"flag"
	"math"
	"time"

	"voxelstream/internal/engine"
	"voxelstream/internal/engineconfig"
	"voxelstream/internal/logging"
	"voxelstream/internal/observer"
	"voxelstream/internal/profiling"
	"voxelstream/internal/quadtree"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Int64("seed", 1, "world generation seed")
	assetsPath := flag.String("assets", "assets", "directory containing .ron blueprint/config files")
	configFile := flag.String("config", "", "optional .ron file overriding engine tunables")
	ticks := flag.Int("ticks", 0, "stop after this many ticks (0 = run until interrupted)")
	orbitRadius := flag.Float64("orbit-radius", 2000, "world-unit radius of the simulated loader's orbit")
	flag.Parse()

	log := logging.L()
	defer log.Sync()

	if *configFile != "" {
		if err := engineconfig.Global().LoadFile(*configFile); err != nil {
			log.Fatal("loading engine config", zap.Error(err))
		}
	}

	w := engine.New(*seed, *assetsPath)
	log.Info("engine started",
		zap.Int64("seed", *seed),
		zap.String("assets", *assetsPath),
	)

	cfg := quadtree.DefaultLoaderConfig()

	tickInterval := 50 * time.Millisecond
	lastReport := time.Now()
	var tickCount int

	for {
		t := time.Now()
		angle := float64(tickCount) * 0.01
		loaderX := math.Cos(angle) * *orbitRadius
		loaderZ := math.Sin(angle) * *orbitRadius

		w.Tick([]observer.Loader{{WorldX: loaderX, WorldZ: loaderZ, Config: cfg}})
		tickCount++

		if *ticks > 0 && tickCount >= *ticks {
			break
		}

		if since := time.Since(lastReport); since >= time.Second {
			log.Info("tick report",
				zap.Int("ticks", tickCount),
				zap.Float64("loaderX", loaderX),
				zap.Float64("loaderZ", loaderZ),
				zap.String("topOps", profiling.TopN(3)),
			)
			lastReport = time.Now()
		}

		if elapsed := time.Since(t); elapsed < tickInterval {
			time.Sleep(tickInterval - elapsed)
		}
	}

	log.Info("engine stopped", zap.Int("totalTicks", tickCount))
}
