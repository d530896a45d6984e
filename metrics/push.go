package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-subxt/log"
)

// PushConfig points at a prometheus push gateway.
type PushConfig struct {
	URL      string            `mapstructure:"url"`
	Job      string            `mapstructure:"job"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	Headers  map[string]string `mapstructure:"headers"`

	// Retries is the number of retries after a failed push.
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry-delay"`
}

type retryableHTTPLogger struct {
	inner *zap.Logger
}

func (r retryableHTTPLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHTTPLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHTTPLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

func (r retryableHTTPLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

// Push adds the metrics gathered by g to the push gateway once.
// Commands are short lived, so metrics are pushed when they finish rather than scraped.
func Push(ctx context.Context, cfg PushConfig, g prometheus.Gatherer, logger log.Log) error {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	if cfg.RetryDelay > 0 {
		client.RetryWaitMin = cfg.RetryDelay
		client.RetryWaitMax = cfg.RetryDelay
	}
	client.Logger = retryableHTTPLogger{logger.Zap()}

	header := http.Header{}
	for k, v := range cfg.Headers {
		header.Add(k, v)
	}
	job := cfg.Job
	if job == "" {
		job = Namespace
	}
	pusher := push.New(cfg.URL, job).
		Gatherer(g).
		Header(header).
		Client(client.StandardClient())
	if cfg.Username != "" && cfg.Password != "" {
		pusher = pusher.BasicAuth(cfg.Username, cfg.Password)
	}
	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.URL, err)
	}
	logger.With().Debug("pushed metrics", log.String("url", cfg.URL), log.String("job", job))
	return nil
}
