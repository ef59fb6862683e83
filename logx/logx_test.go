package logx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(lumberjackLogger)

	Info("MINE", "accepted ", 3, " blocks")
	Warn("LOADER", "blank line")
	assert.Contains(t, buf.String(), "[INFO][MINE]")
	assert.Contains(t, buf.String(), "accepted 3 blocks")
	assert.Contains(t, buf.String(), "[WARN][LOADER]")

	buf.Reset()
	SetDebug(false)
	Debug("MINE", "hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("MINE", "shown")
	assert.Contains(t, buf.String(), "[DEBUG][MINE]")
}

func TestErrorfReturnsError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(lumberjackLogger)

	base := errors.New("boom")
	err := Errorf("validate: %w", base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, buf.String(), "[ERROR][ERROR]")
	assert.Contains(t, buf.String(), "validate: boom")
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MINE_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("MINE_TEST_INT", 1))

	t.Setenv("MINE_TEST_INT", "nope")
	assert.Equal(t, 1, getEnvInt("MINE_TEST_INT", 1))

	t.Setenv("MINE_TEST_INT", "")
	assert.Equal(t, 7, getEnvInt("MINE_TEST_INT", 7))
}
