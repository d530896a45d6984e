package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-subxt/log/logtest"
)

func TestPush(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Add(3)

	var (
		path, user, custom string
		body              []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		user, _, _ = r.BasicAuth()
		custom = r.Header.Get("X-Test")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	err := Push(context.Background(), PushConfig{
		URL:      srv.URL,
		Username: "user",
		Password: "pass",
		Headers:  map[string]string{"X-Test": "value"},
	}, reg, logtest.New(t))
	require.NoError(t, err)
	require.Equal(t, "/metrics/job/"+Namespace, path)
	require.Equal(t, "user", user)
	require.Equal(t, "value", custom)
	require.NotEmpty(t, body)
}

func TestPushRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	err := Push(context.Background(), PushConfig{
		URL:        srv.URL,
		Job:        "cli",
		Retries:    2,
		RetryDelay: time.Millisecond,
	}, prometheus.NewRegistry(), logtest.New(t))
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
}

func TestPushFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	err := Push(context.Background(), PushConfig{URL: srv.URL, Job: "cli"}, prometheus.NewRegistry(), logtest.New(t))
	require.ErrorContains(t, err, "push metrics")
}
