// Benchmark comparing BSP tree sphere queries against brute force
package main

import (
	"context"
	"fmt"
	"math/rand"
	"maze/internal/bsp"
	"maze/internal/physics"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type config struct {
	Counts   []string `cli:"" env:"BSPBENCH_COUNTS"    help:"Comma separated object counts to test."`
	Queries  int      `cli:"" env:"BSPBENCH_QUERIES"   help:"Sphere queries per object count."`
	MaxDepth int      `cli:"" env:"BSPBENCH_MAX_DEPTH" help:"Tree depth budget."`
	Seed     int      `cli:"" env:"BSPBENCH_SEED"      help:"Random seed."`
	Help     bool     `cli:"" env:"-"                  help:"Show help."`
}

func main() {
	conf := config{
		Counts:   []string{"100", "500", "1000", "2000", "5000", "10000"},
		Queries:  1000,
		MaxDepth: 12,
		Seed:     42, // Consistent results
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Compares BSP sphere queries with brute force on random scenes.").
		Options(&conf)
	cli.Load()

	if conf.Queries <= 0 || conf.MaxDepth < 0 {
		logs.Fatal(errors.New("queries must be positive and depth not negative").
			WithTag("queries", conf.Queries).
			WithTag("max_depth", conf.MaxDepth))
	}

	counts, err := parseCounts(conf.Counts)
	if err != nil {
		logs.Fatal(err)
	}

	r := rand.New(rand.NewSource(int64(conf.Seed)))
	for _, count := range counts {
		if ctx.Err() != nil {
			return
		}
		if err := benchmark(r, count, conf.Queries, conf.MaxDepth); err != nil {
			logs.Fatal(err)
		}
	}
}

func benchmark(r *rand.Rand, count, queries, maxDepth int) error {
	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0
	bound := physics.AABB{
		Min: rl.Vector3{X: -spawnSize, Y: -spawnSize, Z: -spawnSize},
		Max: rl.Vector3{X: spawnSize, Y: spawnSize, Z: spawnSize},
	}

	objects := make([]*physics.Collidable, count)
	for i := range objects {
		objects[i] = physics.NewCollidable(fmt.Sprintf("object_%d", i), randomBoundary(r, spawnSize))
	}

	probes := make([]physics.Sphere, queries)
	for i := range probes {
		probes[i] = physics.Sphere{Center: randomPoint(r, spawnSize), Radius: 0.5 + r.Float32()*4}
	}

	buildStart := time.Now()
	tree, err := bsp.Build(objects, bound, maxDepth)
	if err != nil {
		return err
	}
	buildTime := time.Since(buildStart)

	var buf []*physics.Collidable
	treeStart := time.Now()
	treeHits := 0
	for _, s := range probes {
		buf = tree.AppendOverlapsSphere(buf[:0], s)
		treeHits += len(buf)
	}
	treeTime := time.Since(treeStart) / time.Duration(queries)

	bruteStart := time.Now()
	bruteHits := 0
	for _, s := range probes {
		bruteHits += len(bsp.BruteForceOverlapsSphere(objects, s))
	}
	bruteTime := time.Since(bruteStart) / time.Duration(queries)

	if treeHits != bruteHits {
		return errors.New("tree and brute force disagree").
			WithTag("objects", count).
			WithTag("tree_hits", treeHits).
			WithTag("brute_force_hits", bruteHits)
	}

	stats := tree.Stats()
	speedup := float64(bruteTime) / float64(treeTime)
	fmt.Printf("%5d objects: build %9v (%5d nodes, depth %2d) | tree %9v | brute %9v | %6d hits | %.1fx speedup\n",
		count, buildTime.Round(time.Microsecond), stats.Nodes, stats.Depth,
		treeTime.Round(time.Nanosecond), bruteTime.Round(time.Nanosecond), treeHits, speedup)
	return nil
}

func parseCounts(values []string) ([]int, error) {
	counts := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return nil, errors.New("invalid object count").
				WithTag("count", v)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func randomPoint(r *rand.Rand, spawnSize float32) rl.Vector3 {
	return rl.Vector3{
		X: r.Float32()*2*spawnSize - spawnSize,
		Y: r.Float32()*2*spawnSize - spawnSize,
		Z: r.Float32()*2*spawnSize - spawnSize,
	}
}

func randomBoundary(r *rand.Rand, spawnSize float32) physics.Boundary {
	center := randomPoint(r, spawnSize*0.9)
	size := 0.5 + r.Float32()*2

	switch r.Intn(3) {
	case 0:
		return physics.BoxBoundary(physics.NewAABBFromCenter(center, rl.Vector3{X: size, Y: size, Z: size}))
	case 1:
		return physics.SphereBoundary(physics.Sphere{Center: center, Radius: size / 2})
	default:
		axis := r.Intn(3)
		halfX := rl.Vector3Scale(physics.AxisNormal((axis+1)%3), size)
		halfZ := rl.Vector3Scale(physics.AxisNormal((axis+2)%3), size)
		return physics.QuadBoundary(physics.NewQuadAt(center, halfX, halfZ))
	}
}
