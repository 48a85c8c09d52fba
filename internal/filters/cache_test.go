package filters

import (
	"errors"
	"image"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputCache_EvaluatesOncePerVersion(t *testing.T) {
	cache := NewOutputCache(nil)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	calls := 0
	eval := func() (image.Image, error) {
		calls++
		return img, nil
	}

	out, ok := cache.Get("CITest", 1, eval)
	require.True(t, ok)
	assert.Same(t, img, out.(*image.RGBA))

	_, _ = cache.Get("CITest", 1, eval)
	assert.Equal(t, 1, calls)

	_, _ = cache.Get("CITest", 2, eval)
	assert.Equal(t, 2, calls)
}

func TestOutputCache_LogsFailedEvaluation(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	cache := NewOutputCache(logrus.NewEntry(logger))

	convertErr := errors.New("convert input: bad mat")
	calls := 0
	eval := func() (image.Image, error) {
		calls++
		return nil, convertErr
	}

	out, ok := cache.Get("CVMedianBlur", 7, eval)
	assert.False(t, ok)
	assert.Nil(t, out)

	_, ok = cache.Get("CVMedianBlur", 7, eval)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "CVMedianBlur", entry.Data["filter"])
	assert.Equal(t, convertErr, entry.Data["error"])
}

func TestSetLogger_UsedByNewCaches(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	previous := defaultLogger()
	SetLogger(logrus.NewEntry(logger))
	t.Cleanup(func() { SetLogger(previous) })

	f := NewPixellate()
	f.SetInputImage(testImage(image.Rect(0, 0, 4, 4)))
	require.NoError(t, f.SetValue("inputScale", 0))

	_, ok := f.OutputImage()
	assert.False(t, ok)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "CIPixellate", hook.LastEntry().Data["filter"])
	assert.ErrorIs(t, hook.LastEntry().Data["error"].(error), ErrOutOfDomain)
}
