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

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/colarith/colarith/pkg/logutil"
)

// BenchConfig is the toml-tagged configuration for cmd/colarith-bench:
// which operators to run, how large a batch to generate, and how to
// log the run.
type BenchConfig struct {
	// Operators lists the operator identifiers to exercise; empty means
	// every registered operator.
	Operators []string `toml:"operators"`

	// BatchSize is the number of rows per generated column.
	BatchSize int `toml:"batchSize"`

	// Log embeds the ambient logging section every binary carries.
	Log logutil.LogConfig `toml:"log"`
}

// Default returns a BenchConfig with the same defaults SetupMOLogger's
// callers expect when a field is left at its toml zero value.
func Default() *BenchConfig {
	return &BenchConfig{
		BatchSize: 1024,
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a BenchConfig from a toml file at path, filling in
// Default()'s values for anything the file leaves unset.
func Load(path string) (*BenchConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
