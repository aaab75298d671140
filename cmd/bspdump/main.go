// Writes the collision tree of a generated level as JSON
package main

import (
	"io"
	"maze/internal/world"
	"os"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
)

type config struct {
	Out      string `cli:"" env:"BSPDUMP_OUT"       help:"Output file. Empty writes to stdout."`
	Size     int    `cli:"" env:"BSPDUMP_SIZE"      help:"Number of cells along each side of the maze."`
	Seed     int    `cli:"" env:"BSPDUMP_SEED"      help:"Maze generator seed."`
	MaxDepth int    `cli:"" env:"BSPDUMP_MAX_DEPTH" help:"Depth budget of the collision tree."`
	LogLevel string `cli:"" env:"BSPDUMP_LOG_LEVEL" help:"Log level (debug|info|warning|error)."`
	Help     bool   `cli:"" env:"-"                 help:"Show help."`
}

func main() {
	level := world.DefaultConfig()
	conf := config{
		Size:     level.Size,
		Seed:     int(level.Seed),
		MaxDepth: level.MaxDepth,
		LogLevel: "warning",
	}

	cli.Register().
		Help("Generates a level and dumps its collision tree.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal

	level.Size = conf.Size
	level.Seed = int64(conf.Seed)
	level.MaxDepth = conf.MaxDepth

	if err := dump(level, conf.Out); err != nil {
		logs.Fatal(err)
	}
}

func dump(conf world.Config, out string) error {
	l, err := world.NewLevel(conf)
	if err != nil {
		return err
	}
	if err := l.Tree().Validate(); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return errors.New("creating output file failed").
				WithTag("file_name", out).
				Wrap(err)
		}
		defer f.Close()
		w = f
	}

	if err := l.WriteSnapshot(w); err != nil {
		return errors.New("writing snapshot failed").Wrap(err)
	}
	logs.WithTag("level_id", l.ID).
		WithTag("out", out).
		Info("snapshot written")
	return nil
}
