/*
 * Forklift - a chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Forklift Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command forklift is a thin demonstration CLI over the engine core:
// it runs one-shot perft, divide, or bestmove subcommands against a
// FEN and exits. It is not a UCI shell -- wiring this core up to a
// protocol loop is a separate concern this binary deliberately leaves
// out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/kylejrp/Forklift-sub000/internal/config"
	"github.com/kylejrp/Forklift-sub000/internal/logging"
	"github.com/kylejrp/Forklift-sub000/internal/perft"
	"github.com/kylejrp/Forklift-sub000/internal/position"
	"github.com/kylejrp/Forklift-sub000/internal/search"
	"github.com/kylejrp/Forklift-sub000/internal/util"
	"github.com/kylejrp/Forklift-sub000/internal/version"
)

func main() {
	fen := flag.String("fen", position.StartFen, "FEN of the position to operate on")
	depth := flag.Int("depth", 5, "search/perft depth in plies")
	moveTime := flag.Duration("movetime", 0, "time budget for bestmove (0 = use -depth instead)")
	cmd := flag.String("cmd", "perft", "one of: perft, divide, bestmove, version")
	doProfile := flag.Bool("profile", false, "enable CPU profiling, writing a profile to the working directory")
	ttSize := flag.Int("hash", 64, "transposition table size in MB")
	flag.Parse()

	if *doProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if err := config.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.GetLog()

	if *cmd == "version" {
		fmt.Println(version.Version())
		return
	}

	p, err := position.NewPositionFen(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fen:", err)
		os.Exit(1)
	}

	switch *cmd {
	case "perft":
		start := time.Now()
		stats := perft.Count(p, *depth)
		elapsed := time.Since(start)
		util.Out.Printf("depth %d: nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d checkmates=%d (%s, %d nps)\n",
			*depth, stats.Nodes, stats.Captures, stats.EnPassant, stats.Castles, stats.Promotions,
			stats.Checks, stats.Checkmates, elapsed, util.Nps(stats.Nodes, elapsed))

	case "divide":
		for m, nodes := range perft.Divide(p, *depth) {
			fmt.Printf("%s: %d\n", m, nodes)
		}

	case "bestmove":
		engine := search.NewEngine(*ttSize)
		limits := search.Limits{Depth: *depth, MoveTime: *moveTime}
		result := engine.FindBestMove(context.Background(), p, limits)
		fmt.Printf("bestmove %s score %d depth %d nodes %d\n",
			result.BestMove, result.Score, result.CompletedDepth, result.Nodes)

	default:
		log.Errorf("unknown -cmd %q", *cmd)
		os.Exit(1)
	}
}
