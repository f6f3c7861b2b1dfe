// Package config resolves the knobs of the trainer: generation bounds,
// layout sizes and batch parallelism.
//
// Values are layered, last one wins: Default, then .env-style files,
// then the TRAINER_* process environment. Command line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.lepak.sg/algotrainer/tree/binary"
)

const (
	EnvMaxDepth    = "TRAINER_MAX_DEPTH"
	EnvMaxNodes    = "TRAINER_MAX_NODES"
	EnvNodeSize    = "TRAINER_NODE_SIZE"
	EnvLevelHeight = "TRAINER_LEVEL_HEIGHT"
	EnvWorkers     = "TRAINER_WORKERS"
)

// DefaultFiles are read by Read in addition to any files passed to it.
// Missing files are skipped.
var DefaultFiles = []string{".env", ".env.trainer"}

var (
	ErrLayout  = errors.New("node size and level height must be positive")
	ErrWorkers = errors.New("workers must be at least 1")
)

type Config struct {
	MaxDepth int
	MaxNodes int

	NodeSize    float64
	LevelHeight float64

	// Workers bounds how many exercises are generated at once.
	Workers int
}

func Default() Config {
	return Config{
		MaxDepth:    binary.DefaultMaxDepth,
		MaxNodes:    binary.DefaultMaxNodes,
		NodeSize:    binary.DefaultNodeSize,
		LevelHeight: binary.DefaultLevelHeight,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// Validate returns the first problem with c. Generation bound problems
// wrap binary.ErrConfig.
func (c Config) Validate() error {
	if err := binary.ValidateBounds(c.MaxDepth, c.MaxNodes); err != nil {
		return err
	}

	if c.NodeSize <= 0 || c.LevelHeight <= 0 {
		return errors.Wrapf(ErrLayout, "got node size %v, level height %v", c.NodeSize, c.LevelHeight)
	}

	if c.Workers < 1 {
		return errors.Wrapf(ErrWorkers, "got %d", c.Workers)
	}

	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("maxDepth=%d maxNodes=%d nodeSize=%v levelHeight=%v workers=%d",
		c.MaxDepth, c.MaxNodes, c.NodeSize, c.LevelHeight, c.Workers)
}

// Load is Read followed by Validate.
func Load(extraFiles ...string) (Config, error) {
	c, err := Read(extraFiles...)
	if err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Read resolves a Config from the defaults, DefaultFiles, extra files
// and the environment, in that order. The result is not validated so
// that callers can layer more overrides on top first.
func Read(extraFiles ...string) (Config, error) {
	files := lo.Filter(append(DefaultFiles, extraFiles...), func(path string, _ int) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	})

	vars := map[string]string{}
	if len(files) > 0 {
		var err error
		if vars, err = godotenv.Read(files...); err != nil {
			return Config{}, errors.Wrap(err, "reading env files")
		}
	}

	for _, key := range []string{EnvMaxDepth, EnvMaxNodes, EnvNodeSize, EnvLevelHeight, EnvWorkers} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	return Apply(Default(), vars)
}

// Apply overrides fields of base with the TRAINER_* keys present in
// vars. Unknown keys are ignored. Apply does not validate.
func Apply(base Config, vars map[string]string) (Config, error) {
	c := base

	ints := map[string]*int{
		EnvMaxDepth: &c.MaxDepth,
		EnvMaxNodes: &c.MaxNodes,
		EnvWorkers:  &c.Workers,
	}
	for key, dst := range ints {
		v, ok := vars[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", key)
		}
		*dst = n
	}

	floats := map[string]*float64{
		EnvNodeSize:    &c.NodeSize,
		EnvLevelHeight: &c.LevelHeight,
	}
	for key, dst := range floats {
		v, ok := vars[key]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", key)
		}
		*dst = f
	}

	return c, nil
}
