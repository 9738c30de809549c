// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// colarith-bench drives every registered arithmetic operator over a
// generated block of columns and logs row throughput per operator, the
// way a database exercises its vectorized kernels against synthetic
// data before trusting them on a real workload.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/colarith/colarith/pkg/config"
	"github.com/colarith/colarith/pkg/container/block"
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/colarith/colarith/pkg/logutil"
	"github.com/colarith/colarith/pkg/sql/plan/function/arithmetic"
)

// unaryOperators names the registered identifiers that take a single
// operand; every other registered identifier is binary.
var unaryOperators = map[string]bool{
	"negate": true,
	"bitNot": true,
}

func main() {
	configPath := flag.String("config", "", "path to a bench.toml config file; defaults are used if empty")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("load config %q: %v", *configPath, err))
		}
		cfg = loaded
	}

	logger := logutil.SetupMOLogger(&cfg.Log)
	defer logger.Sync()

	names := cfg.Operators
	if len(names) == 0 {
		names = arithmetic.Names()
	}

	for _, name := range names {
		op, ok := arithmetic.Lookup(name)
		if !ok {
			logger.Warn("skipping unregistered operator", zap.String("operator", name))
			continue
		}
		runOne(logger, op, cfg.BatchSize)
	}
}

func runOne(logger *zap.Logger, op arithmetic.Operator, n int) {
	blk, args, resultPos := sampleBlock(op.Name(), n)

	start := time.Now()
	err := op.Execute(blk, args, resultPos)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("operator failed", zap.String("operator", op.Name()), zap.Error(err))
		return
	}

	out, _ := blk.Get(resultPos)
	logger.Info("operator finished",
		zap.String("operator", op.Name()),
		zap.Int("rows", n),
		zap.String("resultType", out.GetType().Oid.String()),
		zap.Duration("elapsed", elapsed),
		zap.Float64("rowsPerSec", float64(n)/elapsed.Seconds()),
	)
}

// sampleBlock builds a block with one or two int32 operand columns,
// sized for op's arity, avoiding zero in the right-hand operand so
// intDiv and modulo don't themselves fail the run.
func sampleBlock(name string, n int) (*block.Block, []int, int) {
	rng := rand.New(rand.NewSource(1))
	left := make([]int32, n)
	for i := range left {
		left[i] = rng.Int31n(1_000_000) - 500_000
	}

	blk := block.New()
	li := blk.Append("left", vector.NewFlat(types.Type{Oid: types.T_int32}, left))

	if unaryOperators[name] {
		return blk, []int{li}, blk.Len()
	}

	right := make([]int32, n)
	for i := range right {
		right[i] = rng.Int31n(1000) + 1
	}
	ri := blk.Append("right", vector.NewFlat(types.Type{Oid: types.T_int32}, right))
	return blk, []int{li, ri}, blk.Len()
}
