// Command perft runs move-generation node-count suites against the board
// package and reports timing, optionally breaking the count down per root
// move ("divide").
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/bitperft/internal/board"
	"github.com/hailam/bitperft/internal/fenio"
	"github.com/hailam/bitperft/internal/perft"
	"github.com/hailam/bitperft/internal/perftcache"
)

var (
	fen        = flag.String("fen", fenio.StartFEN, "FEN of the position to walk")
	depth      = flag.Int("depth", 5, "perft depth")
	divide     = flag.Bool("divide", false, "report a per-root-move node count breakdown")
	cacheDir   = flag.String("cache", "", "directory for the perft result cache (disabled if empty)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	board.Init()

	pos, err := fenio.Parse(*fen)
	if err != nil {
		log.Fatalf("invalid -fen: %v", err)
	}

	var cache *perftcache.Store
	if *cacheDir != "" {
		if err := os.MkdirAll(*cacheDir, 0o755); err != nil {
			log.Fatalf("could not create -cache directory: %v", err)
		}
		cache, err = perftcache.Open(*cacheDir)
		if err != nil {
			log.Fatalf("could not open perft cache: %v", err)
		}
		defer cache.Close()
	}

	start := time.Now()

	if *divide {
		runDivide(pos, cache)
	} else {
		runCount(pos, cache)
	}

	fmt.Fprintf(os.Stderr, "elapsed: %s\n", time.Since(start))
}

func runCount(pos *board.Position, cache *perftcache.Store) {
	key := fenio.Format(pos)

	if cache != nil {
		if nodes, ok := cache.Get(key, *depth); ok {
			log.Printf("cache hit for depth %d", *depth)
			fmt.Printf("%d\n", nodes)
			return
		}
	}

	nodes := perft.Count(pos, *depth)
	fmt.Printf("%d\n", nodes)

	if cache != nil {
		if err := cache.Put(key, *depth, nodes); err != nil {
			log.Printf("warning: could not write perft cache: %v", err)
		}
	}
}

// runDivide runs each root move's subtree on its own clone of pos
// concurrently, since Position is not internally synchronized and every
// goroutine needs an independent copy to mutate via MakeMove/UndoMove.
func runDivide(pos *board.Position, cache *perftcache.Store) {
	if *depth < 1 {
		log.Fatalf("-divide requires -depth >= 1")
	}

	moves := pos.GenerateMoves()

	type result struct {
		move  string
		nodes int64
	}
	results := make([]result, moves.Len())

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.Get(i)
		g.Go(func() error {
			clone := pos.Clone()
			saved := clone.CastlingRights
			if !clone.MakeMove(m) {
				results[i] = result{move: m.String(), nodes: -1}
				return nil
			}
			nodes := perft.Count(clone, *depth-1)
			clone.UndoMove(m, saved)
			results[i] = result{move: m.String(), nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("divide: %v", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].move < results[j].move })

	var total int64
	for _, r := range results {
		if r.nodes < 0 {
			continue // illegal pseudo-legal move, excluded from the divide report
		}
		fmt.Printf("%s: %d\n", r.move, r.nodes)
		total += r.nodes
	}
	fmt.Printf("\ntotal: %d\n", total)

	if cache != nil {
		key := fenio.Format(pos)
		if err := cache.Put(key, *depth, total); err != nil {
			log.Printf("warning: could not write perft cache: %v", err)
		}
	}
}
