package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultEnvWithPlaceholder(t *testing.T) {
	t.Setenv("ENV", "test")
	env := GetDefaultEnv("ENV", "dev")
	if env != "test" {
		t.Errorf("GetDefaultEnv failed, expect: test, actual: %s", env)
	}
}

func TestGetDefaultEnvExpand(t *testing.T) {
	t.Setenv("LESSONS_HOME", "/srv/lessons")
	t.Setenv("LESSONS_LOG", "${LESSONS_HOME}/logs/app.log")
	assert.Equal(t, "/srv/lessons/logs/app.log", GetDefaultEnv("LESSONS_LOG", ""))
}

func TestGetDefaultEnvInt(t *testing.T) {
	t.Setenv("LESSONS_PORT", "9000")
	assert.Equal(t, 9000, GetDefaultEnvInt("LESSONS_PORT", 8000))

	t.Setenv("LESSONS_PORT", "not-a-number")
	assert.Equal(t, 8000, GetDefaultEnvInt("LESSONS_PORT", 8000))

	assert.Equal(t, 42, GetDefaultEnvInt("LESSONS_MISSING_INT", 42))
}

func TestGetDefaultEnvBool(t *testing.T) {
	t.Setenv("LESSONS_FLAG", "true")
	assert.True(t, GetDefaultEnvBool("LESSONS_FLAG", false))

	t.Setenv("LESSONS_FLAG", "nope")
	assert.False(t, GetDefaultEnvBool("LESSONS_FLAG", false))
}
