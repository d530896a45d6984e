package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig(t *testing.T) {
	vip := viper.New()
	err := LoadConfig(".asdasda", vip)
	// verify that after attempting to load a non-existent file, an attempt is made to load the default config
	assert.ErrorContains(t, err, "failed to read config file open ./subxt.toml")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subxt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
metadata = "/tmp/polkadot.json"
metrics = true

[logging]
log-encoder = "json"
log-level = "debug"
dispatch = "info"

[metrics-push]
url = "http://localhost:9091"
job = "payouts"
retries = 3
retry-delay = "250ms"
`), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(path, vip))

	conf := DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	require.NoError(t, vip.Unmarshal(&conf, viper.DecodeHook(hook)))

	require.Equal(t, "/tmp/polkadot.json", conf.MetadataFile)
	require.True(t, conf.CollectMetrics)
	require.Equal(t, JSONLogEncoder, conf.LOGGING.Encoder)
	require.Equal(t, "http://localhost:9091", conf.Push.URL)
	require.Equal(t, "payouts", conf.Push.Job)
	require.Equal(t, 3, conf.Push.Retries)
	require.Equal(t, 250*time.Millisecond, conf.Push.RetryDelay)
	require.NoError(t, conf.Validate())

	lvl, err := conf.LOGGING.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)

	lvl, err = conf.LOGGING.ComponentLevel("dispatch")
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)

	// not set in the file, keeps the default
	lvl, err = conf.LOGGING.ComponentLevel("extrinsic")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Config)
		err    string
	}{
		{desc: "default"},
		{
			desc:   "no metadata",
			modify: func(c *Config) { c.MetadataFile = "" },
			err:    "metadata file is not set",
		},
		{
			desc:   "metrics without url",
			modify: func(c *Config) { c.CollectMetrics = true },
			err:    "push url is not set",
		},
		{
			desc:   "bad level",
			modify: func(c *Config) { c.LOGGING.AppLoggerLevel = "loud" },
			err:    `invalid log-level level "loud"`,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			conf := DefaultConfig()
			if tc.modify != nil {
				tc.modify(&conf)
			}
			err := conf.Validate()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.err)
		})
	}
}
