// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlkit/avl"
)

// BenchOptions select the keys a benchmark inserts
type BenchOptions struct {
	N            int
	Order        string // asc, desc or random
	Seed         uint64
	ShowProgress bool
	Progress     io.Writer
}

// BenchResult is the shape of the tree after each phase
type BenchResult struct {
	N              int
	InsertHeight   int
	InsertBound    float64
	InsertDuration time.Duration
	RemoveHeight   int // after removing every other key
	RemoveBound    float64
	RemoveDuration time.Duration
}

func benchKeys(n int, order string, seed uint64) ([]int, error) {
	keys := make([]int, n)
	switch order {
	case "asc", "":
		for i := range keys {
			keys[i] = i + 1
		}
	case "desc":
		for i := range keys {
			keys[i] = n - i
		}
	case "random":
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		for i, k := range rng.Perm(n) {
			keys[i] = k + 1
		}
	default:
		return nil, fmt.Errorf("unknown key order %q, want asc, desc or random", order)
	}
	return keys, nil
}

// runBench inserts N keys, checks the tree, then removes every other key
// and checks again.
func runBench(opts BenchOptions) (BenchResult, error) {
	if opts.N <= 0 {
		return BenchResult{}, fmt.Errorf("key count must be positive, got %d", opts.N)
	}
	keys, err := benchKeys(opts.N, opts.Order, opts.Seed)
	if err != nil {
		return BenchResult{}, err
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		w := opts.Progress
		if w == nil {
			w = os.Stderr
		}
		bar = progressbar.NewOptions(opts.N+(opts.N+1)/2,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("⏱️  Benchmarking..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}

	tree := avl.New[int, int]()
	result := BenchResult{N: opts.N}

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
		if bar != nil {
			bar.Add(1)
		}
	}
	result.InsertDuration = time.Since(start)
	result.InsertHeight = tree.Height()
	result.InsertBound = avl.MaxHeight(tree.Len())
	if err := tree.Check(); err != nil {
		return result, fmt.Errorf("after inserts: %w", err)
	}
	logger.Debug().Int("n", opts.N).Int("height", result.InsertHeight).Dur("took", result.InsertDuration).Msg("inserted")

	start = time.Now()
	for i := 0; i < len(keys); i += 2 {
		tree.Remove(keys[i])
		if bar != nil {
			bar.Add(1)
		}
	}
	result.RemoveDuration = time.Since(start)
	result.RemoveHeight = tree.Height()
	result.RemoveBound = avl.MaxHeight(tree.Len())
	if err := tree.Check(); err != nil {
		return result, fmt.Errorf("after removes: %w", err)
	}
	logger.Debug().Int("left", tree.Len()).Int("height", result.RemoveHeight).Dur("took", result.RemoveDuration).Msg("removed")

	if bar != nil {
		bar.Finish()
	}
	return result, nil
}

func printBenchResult(w io.Writer, r BenchResult) {
	fmt.Fprintf(w, "%skeys:%s %d\n", Green, Reset, r.N)
	fmt.Fprintf(w, "%sinsert:%s height %d (bound %.2f) in %s\n", Green, Reset, r.InsertHeight, r.InsertBound, r.InsertDuration)
	fmt.Fprintf(w, "%sremove:%s height %d (bound %.2f) in %s\n", Green, Reset, r.RemoveHeight, r.RemoveBound, r.RemoveDuration)
}
