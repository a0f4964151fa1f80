package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultElems       = 4096
	DefaultRounds      = 50
	DefaultParallelism = 4
)

// BenchConfig describes the bench subcommand's workload matrix: every
// scenario runs once per allocator strategy.
type BenchConfig struct {
	Parallelism int        `yaml:"parallelism"`
	Allocators  []string   `yaml:"allocators"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario is one benchmark workload.
type Scenario struct {
	Name     string `yaml:"name"`
	Workload string `yaml:"workload"` // append, erase, resize or mixed
	Elems    int    `yaml:"elems"`
	Rounds   int    `yaml:"rounds"`
}

func DefaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		Parallelism: DefaultParallelism,
		Allocators:  []string{"heap", "arena", "pool"},
		Scenarios: []Scenario{
			{Name: "append-heavy", Workload: "append", Elems: DefaultElems, Rounds: DefaultRounds},
			{Name: "erase-front", Workload: "erase", Elems: 2048, Rounds: 10},
			{Name: "resize-oscillation", Workload: "resize", Elems: DefaultElems, Rounds: DefaultRounds},
			{Name: "mixed", Workload: "mixed", Elems: DefaultElems, Rounds: DefaultRounds},
		},
	}
}

// LoadBenchConfig reads a yaml config, overlaying the defaults.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultBenchConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize clamps out-of-range values so a hand-written config cannot
// produce zero-round scenarios or a zero worker limit.
func (c *BenchConfig) normalize() {
	if c.Parallelism <= 0 {
		c.Parallelism = DefaultParallelism
	}
	if len(c.Allocators) == 0 {
		c.Allocators = []string{"heap"}
	}
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Elems <= 0 {
			s.Elems = DefaultElems
		}
		if s.Rounds <= 0 {
			s.Rounds = DefaultRounds
		}
		if s.Name == "" {
			s.Name = s.Workload
		}
	}
}
