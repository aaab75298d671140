package main

import (
	"context"
	"maze/internal/game"
	"maze/internal/world"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

// Keeps the config keys readable when the binary is obfuscated.
var _ = reflect.TypeOf(config{})

type config struct {
	LogLevel    string  `cli:""        env:"MAZE_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool    `cli:""        env:"MAZE_LOG_INDENT"   help:"Indent logs."`
	MetricsAddr string  `cli:""        env:"MAZE_METRICS_ADDR" help:"Listening address for Prometheus metrics. Empty disables it."`
	Width       int     `cli:""        env:"MAZE_WIDTH"        help:"Window width."`
	Height      int     `cli:""        env:"MAZE_HEIGHT"       help:"Window height."`
	TargetFPS   int     `cli:",hidden" env:"MAZE_TARGET_FPS"   help:"Frame rate cap."`
	Size        int     `cli:""        env:"MAZE_SIZE"         help:"Number of cells along each side of the maze."`
	Seed        int     `cli:""        env:"MAZE_SEED"         help:"Maze generator seed. 0 picks one from the clock."`
	TileSize    float64 `cli:",hidden" env:"MAZE_TILE_SIZE"    help:"Width of a maze cell."`
	WallHeight  float64 `cli:",hidden" env:"MAZE_WALL_HEIGHT"  help:"Distance between floor and ceiling."`
	MaxDepth    int     `cli:""        env:"MAZE_MAX_DEPTH"    help:"Depth budget of the collision tree."`
	NoShell     bool    `cli:",hidden" env:"MAZE_NO_SHELL"     help:"Do not wrap the level in a containing box."`
	Help        bool    `cli:""        env:"-"                 help:"Show help."`
}

func main() {
	level := world.DefaultConfig()
	conf := config{
		LogLevel:   logs.InfoLevel.String(),
		Width:      1280,
		Height:     720,
		TargetFPS:  120,
		Size:       level.Size,
		TileSize:   float64(level.TileSize),
		WallHeight: float64(level.WallHeight),
		MaxDepth:   level.MaxDepth,
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Runs the maze.").
		Options(&conf)
	cli.Load()

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	level = levelConfig(conf)
	if level.Seed == 0 {
		level.Seed = time.Now().UnixNano()
	}

	if conf.MetricsAddr != "" {
		server := serveMetrics(ctx, conf.MetricsAddr)
		defer server.Close()
	}

	g, err := game.New(game.Config{
		Width:     int32(conf.Width),
		Height:    int32(conf.Height),
		TargetFPS: int32(conf.TargetFPS),
		Level:     level,
	})
	if err != nil {
		logs.Fatal(errors.New("creating game failed").Wrap(err))
	}

	logs.WithTag("log_level", conf.LogLevel).
		WithTag("size", level.Size).
		WithTag("seed", level.Seed).
		WithTag("max_depth", level.MaxDepth).
		WithTag("metrics_addr", conf.MetricsAddr).
		Info("starting maze")

	if err := g.Run(ctx); err != nil && err != context.Canceled {
		logs.Error(err)
	}
}

func serveMetrics(ctx context.Context, addr string) *http.Server {
	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: &admin}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Error(errors.New("metrics server failed").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	return server
}

func validateConfig(conf config) error {
	if conf.Width <= 0 || conf.Height <= 0 {
		return errors.New("invalid window size").
			WithTag("width", conf.Width).
			WithTag("height", conf.Height)
	}

	if err := levelConfig(conf).Validate(); err != nil {
		return errors.New("invalid level").Wrap(err)
	}
	return nil
}

func levelConfig(conf config) world.Config {
	return world.Config{
		Dimensions: world.Dimensions{
			TileSize:   float32(conf.TileSize),
			WallHeight: float32(conf.WallHeight),
		},
		Size:     conf.Size,
		Seed:     int64(conf.Seed),
		MaxDepth: conf.MaxDepth,
		Shell:    !conf.NoShell,
	}
}
