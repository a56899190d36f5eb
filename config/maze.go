package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every maze configuration error.
var ErrInvalidConfig = errors.New("invalid maze configuration")

const (
	DefaultOutputFile = "maze.txt"
)

var mandatoryMazeKeys = []string{"WIDTH", "HEIGHT", "ENTRY", "EXIT"}

// MazeFile is a validated maze configuration file.
type MazeFile struct {
	Width        int
	Height       int
	Entry        maze.CellPosition
	Exit         maze.CellPosition
	OutputFile   string
	Perfect      bool
	Seed         *uint64 // nil draws a random seed
	Pattern      bool
	PatternScale int
}

// LoadMaze reads and validates the KEY=VALUE file at path.
func LoadMaze(path string) (*MazeFile, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidConfig, path, err)
	}
	return mazeFromValues(values)
}

// ParseMaze reads and validates KEY=VALUE lines from r.
func ParseMaze(r io.Reader) (*MazeFile, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return mazeFromValues(values)
}

func mazeFromValues(values map[string]string) (*MazeFile, error) {
	for _, key := range mandatoryMazeKeys {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: missing mandatory setting %s", ErrInvalidConfig, key)
		}
	}

	mf := &MazeFile{
		OutputFile: DefaultOutputFile,
		Perfect:    true,
		Pattern:    true,
	}

	var err error
	if mf.Width, err = strconv.Atoi(values["WIDTH"]); err != nil {
		return nil, fmt.Errorf("%w: WIDTH: %w", ErrInvalidConfig, err)
	}
	if mf.Height, err = strconv.Atoi(values["HEIGHT"]); err != nil {
		return nil, fmt.Errorf("%w: HEIGHT: %w", ErrInvalidConfig, err)
	}
	if mf.Width < 2 || mf.Height < 2 {
		return nil, fmt.Errorf("%w: WIDTH and HEIGHT must be at least 2, got %dx%d", ErrInvalidConfig, mf.Width, mf.Height)
	}

	if mf.Entry, err = maze.ParseXY(values["ENTRY"]); err != nil {
		return nil, fmt.Errorf("%w: ENTRY: %w", ErrInvalidConfig, err)
	}
	if mf.Exit, err = maze.ParseXY(values["EXIT"]); err != nil {
		return nil, fmt.Errorf("%w: EXIT: %w", ErrInvalidConfig, err)
	}
	if !mf.contains(mf.Entry) {
		return nil, fmt.Errorf("%w: ENTRY (%d,%d) is out of bounds for %dx%d maze", ErrInvalidConfig, mf.Entry.Col, mf.Entry.Row, mf.Width, mf.Height)
	}
	if !mf.contains(mf.Exit) {
		return nil, fmt.Errorf("%w: EXIT (%d,%d) is out of bounds for %dx%d maze", ErrInvalidConfig, mf.Exit.Col, mf.Exit.Row, mf.Width, mf.Height)
	}
	if mf.Entry == mf.Exit {
		return nil, fmt.Errorf("%w: ENTRY and EXIT must be different cells", ErrInvalidConfig)
	}

	if v, ok := values["OUTPUT_FILE"]; ok && strings.TrimSpace(v) != "" {
		mf.OutputFile = strings.TrimSpace(v)
	}
	if v, ok := values["PERFECT"]; ok {
		if mf.Perfect, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: PERFECT: %w", ErrInvalidConfig, err)
		}
		if !mf.Perfect {
			return nil, fmt.Errorf("%w: only perfect mazes are supported", ErrInvalidConfig)
		}
	}
	if v, ok := values["SEED"]; ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SEED: %w", ErrInvalidConfig, err)
		}
		mf.Seed = &seed
	}
	if v, ok := values["PATTERN"]; ok {
		if mf.Pattern, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: PATTERN: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := values["PATTERN_SCALE"]; ok {
		if mf.PatternScale, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: PATTERN_SCALE: %w", ErrInvalidConfig, err)
		}
		if mf.PatternScale < 1 {
			return nil, fmt.Errorf("%w: PATTERN_SCALE must be at least 1", ErrInvalidConfig)
		}
	}

	return mf, nil
}

func (mf *MazeFile) contains(pos maze.CellPosition) bool {
	return pos.Row >= 0 && pos.Row < mf.Height && pos.Col >= 0 && pos.Col < mf.Width
}

// Options converts the file into generation options.
func (mf *MazeFile) Options() maze.Options {
	return maze.Options{
		Height:       mf.Height,
		Width:        mf.Width,
		Entry:        mf.Entry,
		Exit:         mf.Exit,
		Seed:         mf.Seed,
		Pattern:      mf.Pattern,
		PatternScale: mf.PatternScale,
	}
}
