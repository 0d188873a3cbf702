package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

// setup registers flags on a fresh FlagSet and parses args.
func setup(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, config.RegisterFlags(fs, v))
	require.NoError(t, fs.Parse(args))
	return v
}

// noEnvFile points Load at a .env path that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

// TestLoad_Defaults returns Default when nothing is set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(setup(t), "", noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

// TestLoad_Flags applies command-line values.
func TestLoad_Flags(t *testing.T) {
	v := setup(t, "-i", "caso4.txt", "--fallback", "caso5.txt", "--memory-limit-mb", "64", "--strict", "--png", "out.png",
		"--mode", "path", "--margin", "0")
	cfg, err := config.Load(v, "", noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, "caso4.txt", cfg.Input)
	require.Equal(t, "caso5.txt", cfg.Fallback)
	require.Equal(t, int64(64<<20), cfg.MemoryLimitBytes())
	require.True(t, cfg.Strict)
	require.Equal(t, "out.png", cfg.PNG)
	require.Equal(t, "path", cfg.Mode)
	require.Zero(t, cfg.Margin)
}

// TestLoad_Env lets LABYRINTH_* variables override defaults but not flags.
func TestLoad_Env(t *testing.T) {
	t.Setenv("LABYRINTH_FALLBACK", "env-big.txt")
	t.Setenv("LABYRINTH_PROGRESS_EVERY", "10")
	t.Setenv("LABYRINTH_INPUT", "env.txt")

	cfg, err := config.Load(setup(t, "--input", "flag.txt"), "", noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, "flag.txt", cfg.Input)
	require.Equal(t, "env-big.txt", cfg.Fallback)
	require.Equal(t, 10, cfg.ProgressEvery)
}

// TestLoad_DotEnv reads variables from a .env file.
func TestLoad_DotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LABYRINTH_SCALE=3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LABYRINTH_SCALE") })

	cfg, err := config.Load(setup(t), "", envFile)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Scale)
}

// TestLoad_File reads a YAML config file.
func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "labyrinth.yaml")
	require.NoError(t, os.WriteFile(file, []byte("input: from-file.txt\nmargin: 5\nlog-format: json\n"), 0o600))

	cfg, err := config.Load(setup(t), file, noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, "from-file.txt", cfg.Input)
	require.Equal(t, 5, cfg.Margin)
	require.Equal(t, "json", cfg.LogFormat)
}

// TestLoad_MissingFile fails when an explicit config file is absent.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(setup(t), filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t))
	require.Error(t, err)
}

// TestLoad_EmptyInput rejects a blank input path.
func TestLoad_EmptyInput(t *testing.T) {
	_, err := config.Load(setup(t, "--input", " "), "", noEnvFile(t))
	require.ErrorIs(t, err, config.ErrNoInput)
}

// TestMemoryLimitBytes keeps the sentinel meanings of 0 and negatives.
func TestMemoryLimitBytes(t *testing.T) {
	require.Equal(t, int64(0), config.Config{}.MemoryLimitBytes())
	require.Equal(t, int64(-1), config.Config{MemoryLimitMB: -1}.MemoryLimitBytes())
	require.Equal(t, int64(2<<20), config.Config{MemoryLimitMB: 2}.MemoryLimitBytes())
}
