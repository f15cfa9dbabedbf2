// Package config supplies default settings for the maze executables. Values
// come from the environment, optionally loaded from a .env file in the
// working directory; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the defaults for the command-line tools.
type Config struct {
	RandomSeed int64  // Seed for generation; negative picks one from the clock
	Width      int    // Maze width in pixels
	Height     int    // Maze height in pixels
	OutputFile string // Where create_maze_image writes its image
	InputFile  string // The image parse_maze_image reads
}

// The environment variables read by Load.
const (
	EnvRandomSeed = "MAZE_RANDOM_SEED"
	EnvWidth      = "MAZE_WIDTH"
	EnvHeight     = "MAZE_HEIGHT"
	EnvOutputFile = "MAZE_OUTPUT_FILE"
	EnvInputFile  = "MAZE_INPUT_FILE"
)

// Returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		RandomSeed: -1,
		Width:      21,
		Height:     21,
		OutputFile: "maze.bmp",
		InputFile:  "maze.bmp",
	}
}

// Loads any .env file in the working directory, then reads the environment,
// falling back to Default for unset variables. A missing .env file is not an
// error; a malformed one, or a variable that doesn't parse, is.
func Load() (Config, error) {
	return LoadFiles()
}

// Like Load, but reads the given .env files instead of ./.env.
func LoadFiles(filenames ...string) (Config, error) {
	e := godotenv.Load(filenames...)
	if (e != nil) && !errors.Is(e, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("Error loading env file: %w", e)
	}
	toReturn := Default()
	toReturn.RandomSeed, e = getEnvAsInt64(EnvRandomSeed,
		toReturn.RandomSeed)
	if e != nil {
		return Config{}, e
	}
	width, e := getEnvAsInt64(EnvWidth, int64(toReturn.Width))
	if e != nil {
		return Config{}, e
	}
	toReturn.Width = int(width)
	height, e := getEnvAsInt64(EnvHeight, int64(toReturn.Height))
	if e != nil {
		return Config{}, e
	}
	toReturn.Height = int(height)
	toReturn.OutputFile = getEnvWithDefault(EnvOutputFile,
		toReturn.OutputFile)
	toReturn.InputFile = getEnvWithDefault(EnvInputFile, toReturn.InputFile)
	return toReturn, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, e := strconv.ParseInt(valueStr, 10, 64)
	if e != nil {
		return 0, fmt.Errorf("Environment variable %s must be an integer: %w",
			key, e)
	}
	return value, nil
}
