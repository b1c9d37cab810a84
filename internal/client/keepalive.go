package client

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// KeepAwake pings the public endpoint on an interval so the hosting
// platform keeps the process warm.
type KeepAwake struct {
	url      string
	interval time.Duration
	client   *http.Client
	log      *zap.Logger
}

func NewKeepAwake(url string, interval time.Duration, log *zap.Logger) *KeepAwake {
	return &KeepAwake{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Run blocks until ctx is cancelled.
func (k *KeepAwake) Run(ctx context.Context) {
	k.log.Info("keep-awake started", zap.String("url", k.url), zap.Duration("interval", k.interval))

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *KeepAwake) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		k.log.Warn("keep-awake request build failed", zap.Error(err))
		return
	}

	resp, err := k.client.Do(req)
	if err != nil {
		k.log.Warn("keep-awake ping failed", zap.Error(err))
		return
	}
	resp.Body.Close()

	k.log.Debug("keep-awake ping", zap.Int("status", resp.StatusCode))
}
