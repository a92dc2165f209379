package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Release(t *testing.T) {
	t.Setenv(gin.EnvGinMode, gin.ReleaseMode)

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	l.WithField("order_id", 7).Warn("store note written")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store note written", entry["msg"])
	assert.EqualValues(t, 7, entry["order_id"])
}

func TestNew_Debug(t *testing.T) {
	t.Setenv(gin.EnvGinMode, gin.DebugMode)

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
