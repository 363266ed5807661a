package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := ContextWithActor(context.Background(), "clerk-1", "clerk")
	ctx = ContextWithRequestID(ctx, "req-42")

	WithContext(ctx).WithField("job_id", "job-9").Info("assigned")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "assigned", entry.Message)
	assert.Equal(t, "clerk-1", entry.Data["actor"])
	assert.Equal(t, "clerk", entry.Data["role"])
	assert.Equal(t, "req-42", entry.Data["request_id"])
	assert.Equal(t, "job-9", entry.Data["job_id"])
}

func TestWithContextDefaultsToSystemActor(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).Warn("no actor")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "system", entry.Data["actor"])
	_, hasRole := entry.Data["role"]
	assert.False(t, hasRole)
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for level, want := range cases {
		Setup(level)
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
}
