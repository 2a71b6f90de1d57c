package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitolquiz/internal/questiongen"
)

// isolate points the config search path at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, questiongen.DifficultyEasy, cfg.Difficulty())
	assert.Equal(t, 10, cfg.Quiz.Questions)
	assert.Equal(t, uint64(0), cfg.Quiz.Seed)
	assert.Equal(t, 10, cfg.Quiz.AttemptsPerQuestion)
	assert.Equal(t, 30, cfg.Generation.PartyDraws)
	assert.Equal(t, 40, cfg.Generation.SeniorityDraws)
	assert.Equal(t, 50, cfg.Generation.PartySeniorityDraws)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, AppName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AppName, "config.yaml"), []byte(`
quiz:
  difficulty: hard
  questions: 5
generation:
  party_draws: 12
`), 0o644))

	t.Setenv("CAPITOLQUIZ_QUIZ_QUESTIONS", "7")
	t.Setenv("CAPITOLQUIZ_QUIZ_SEED", "99")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("difficulty", "easy", "")
	flags.Int("questions", 10, "")
	require.NoError(t, flags.Parse([]string{"--difficulty", "easy"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, questiongen.DifficultyEasy, cfg.Difficulty(), "flag beats file")
	assert.Equal(t, 7, cfg.Quiz.Questions, "env beats file, unset flag ignored")
	assert.Equal(t, uint64(99), cfg.Quiz.Seed)
	assert.Equal(t, 12, cfg.GeneratorConfig().PartyDraws)
	assert.Len(t, cfg.GeneratorConfig().Validators, 2)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"CAPITOLQUIZ_QUIZ_DIFFICULTY":            "medium",
		"CAPITOLQUIZ_QUIZ_QUESTIONS":             "0",
		"CAPITOLQUIZ_QUIZ_ATTEMPTS_PER_QUESTION": "-1",
		"CAPITOLQUIZ_GENERATION_SENIORITY_DRAWS": "0",
	}
	for env, val := range tests {
		t.Run(env, func(t *testing.T) {
			isolate(t)
			t.Setenv(env, val)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "capitolquiz"), ConfigDir())
	assert.Equal(t, filepath.Join("/state", "capitolquiz", "capitolquiz.log"), DefaultLogPath())
}
