package sidechannel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/pkg"
)

const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeError     = "error"
	OutcomeSkipped   = "skipped"
	OutcomeMock      = "mock"
)

// Outcome is the result of one best-effort call. It is only logged and counted.
type Outcome struct {
	Channel    string
	StatusCode int
	Err        error
	Duration   time.Duration
	Label      string
}

// BestEffortClient posts JSON once, bounded by a timeout, and never retries.
type BestEffortClient struct {
	http     *http.Client
	timeout  time.Duration
	mockMode bool
}

func NewBestEffortClient(timeout time.Duration, mockMode bool) *BestEffortClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if mockMode {
		log.Printf("[sidechannel] mock mode enabled")
	}
	return &BestEffortClient{
		http:     &http.Client{Timeout: timeout},
		timeout:  timeout,
		mockMode: mockMode,
	}
}

// PostJSON sends payload to url. A caller going away does not cut the call
// short; only the client timeout does.
func (c *BestEffortClient) PostJSON(ctx context.Context, channel, url string, payload any, headers map[string]string) (out Outcome) {
	start := time.Now()
	out.Channel = channel
	defer func() {
		out.Duration = time.Since(start)
		metrics.SideChannelCalls.WithLabelValues(channel, out.Label).Inc()
		if out.Label != OutcomeSkipped {
			metrics.SideChannelDuration.WithLabelValues(channel).Observe(out.Duration.Seconds())
		}
	}()

	if url == "" {
		log.Printf("[sidechannel][%s] skipped: no url configured", channel)
		out.Label = OutcomeSkipped
		return out
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[sidechannel][%s] marshal failed err=%v", channel, err)
		out.Err, out.Label = err, OutcomeError
		return out
	}

	if c.mockMode {
		log.Printf("[sidechannel][%s] mock post url=%s payload_len=%d", channel, url, len(body))
		out.StatusCode, out.Label = http.StatusAccepted, OutcomeMock
		return out
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		out.Err, out.Label = err, OutcomeError
		return out
	}
	req.Header.Set("Content-Type", "application/json")
	if id := pkg.CorrelationID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[sidechannel][%s] post failed url=%s err=%v", channel, url, err)
		out.Err, out.Label = err, OutcomeError
		return out
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	out.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		out.Label = OutcomeHTTPError
		log.Printf("[sidechannel][%s] post rejected url=%s status=%d", channel, url, resp.StatusCode)
		return out
	}
	out.Label = OutcomeOK
	log.Printf("[sidechannel][%s] post success url=%s status=%d", channel, url, resp.StatusCode)
	return out
}
