package headless

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filter-explorer/internal/config"
	"filter-explorer/internal/filters"
)

func testConfig(t *testing.T, filter string, values ...string) *config.Config {
	return &config.Config{
		FilterName:  filter,
		ContentMode: "fit",
		Background:  "#000000",
		RefreshHz:   240,
		Headless:    true,
		Output:      filepath.Join(t.TempDir(), "frame.png"),
		Width:       64,
		Height:      48,
		Values:      values,
	}
}

func warnings(hook *logtest.Hook) []string {
	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		filter      string
		values      []string
		wantErr     error
		wantApplied []string
		wantIgnored []string
		wantWarning bool
	}{
		{
			name:        "renders frame",
			filter:      "CIGaussianBlur",
			values:      []string{"inputRadius=2"},
			wantApplied: []string{"inputRadius"},
		},
		{
			name:    "out of domain value has no output",
			filter:  "CIPixellate",
			values:  []string{"inputScale=0"},
			wantErr: ErrNoOutput,
		},
		{
			name:        "unknown key only warns",
			filter:      "CISepiaTone",
			values:      []string{"inputBogus=1", "inputIntensity=0.5"},
			wantApplied: []string{"inputIntensity"},
			wantIgnored: []string{"inputBogus"},
			wantWarning: true,
		},
		{
			name:    "unknown filter",
			filter:  "CINoSuchFilter",
			wantErr: filters.ErrUnknownFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			cfg := testConfig(t, tt.filter, tt.values...)

			result, err := Run(context.Background(), cfg, logger)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				_, statErr := os.Stat(cfg.Output)
				assert.True(t, os.IsNotExist(statErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Frames)
			assert.Equal(t, tt.wantApplied, result.Applied)
			assert.Equal(t, tt.wantIgnored, result.Ignored)
			assert.Contains(t, result.Metrics, "mse")
			assert.Contains(t, result.Metrics, "psnr")
			assert.Equal(t, tt.wantWarning, len(warnings(hook)) > 0)

			f, err := os.Open(cfg.Output)
			require.NoError(t, err)
			defer f.Close()
			img, err := png.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())
			assert.Equal(t, 48, img.Bounds().Dy())
		})
	}
}

func TestRun_CancelledBeforeFirstFrame(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig(t, "CIGaussianBlur"), logger)
	require.ErrorIs(t, err, ErrNoFrame)
}

func TestRun_InvalidValue(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	_, err := Run(context.Background(), testConfig(t, "CIGaussianBlur", "inputRadius=NaN"), logger)
	require.Error(t, err)
}
