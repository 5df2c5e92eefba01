package sidechannel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/internal/usecase/interfaces"
	"tuition_billing/pkg"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBestEffortClient_PostJSON(t *testing.T) {
	t.Run("success carries correlation id", func(t *testing.T) {
		var gotID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = r.Header.Get("X-Request-ID")
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected json content type")
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := NewBestEffortClient(time.Second, false)
		ctx := pkg.WithCorrelationID(context.Background(), "req-7")
		out := c.PostJSON(ctx, "test", srv.URL, map[string]string{"a": "b"}, nil)
		if out.Label != OutcomeOK || out.StatusCode != http.StatusAccepted || out.Err != nil {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Duration <= 0 {
			t.Fatalf("expected duration")
		}
		if gotID != "req-7" {
			t.Fatalf("expected correlation header, got %q", gotID)
		}
	})

	t.Run("non 2xx is an http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		before := testutil.ToFloat64(metrics.SideChannelCalls.WithLabelValues("test-5xx", OutcomeHTTPError))
		out := NewBestEffortClient(time.Second, false).PostJSON(context.Background(), "test-5xx", srv.URL, struct{}{}, nil)
		if out.Label != OutcomeHTTPError || out.Err == nil {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if got := testutil.ToFloat64(metrics.SideChannelCalls.WithLabelValues("test-5xx", OutcomeHTTPError)); got != before+1 {
			t.Fatalf("expected counter increment, got %v", got)
		}
	})

	t.Run("timeout bounds the call and never retries", func(t *testing.T) {
		var hits int32
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&hits, 1)
			<-release
		}))
		defer srv.Close()
		defer close(release)

		out := NewBestEffortClient(50*time.Millisecond, false).PostJSON(context.Background(), "test", srv.URL, struct{}{}, nil)
		if out.Label != OutcomeError || out.Err == nil {
			t.Fatalf("expected error outcome, got %+v", out)
		}
		if atomic.LoadInt32(&hits) != 1 {
			t.Fatalf("expected exactly one attempt, got %d", hits)
		}
	})

	t.Run("canceled caller does not cancel the call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := NewBestEffortClient(time.Second, false).PostJSON(ctx, "test", srv.URL, struct{}{}, nil)
		if out.Label != OutcomeOK {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("no url is skipped", func(t *testing.T) {
		out := NewBestEffortClient(time.Second, false).PostJSON(context.Background(), "test", "", struct{}{}, nil)
		if out.Label != OutcomeSkipped {
			t.Fatalf("expected skipped, got %+v", out)
		}
	})

	t.Run("mock mode does not call out", func(t *testing.T) {
		out := NewBestEffortClient(time.Second, true).PostJSON(context.Background(), "test", "http://127.0.0.1:1/unreachable", struct{}{}, nil)
		if out.Label != OutcomeMock || out.Err != nil {
			t.Fatalf("expected mock outcome, got %+v", out)
		}
	})
}

func TestValidatorDispatcher_Dispatch(t *testing.T) {
	var got interfaces.ValidationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewValidatorDispatcher(NewBestEffortClient(time.Second, false), srv.URL)
	d.Dispatch(context.Background(), interfaces.ValidationRequest{
		PaymentID:   "p-1",
		FeeType:     "scholarship_fee",
		CallbackURL: "http://billing/v1/verdicts/claims",
	})
	if got.PaymentID != "p-1" || got.CallbackURL != "http://billing/v1/verdicts/claims" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestEmailWebhook_Forward(t *testing.T) {
	var key string
	var got interfaces.EmailNotification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("Idempotency-Key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewEmailWebhook(NewBestEffortClient(time.Second, false), srv.URL)
	w.Forward(context.Background(), interfaces.EmailNotification{
		NotificationType: "scholarship_fee_paid",
		UniversityEmail:  "admissions@lakeside.edu",
		IdempotencyKey:   "abc",
	})
	if key != "abc" || got.UniversityEmail != "admissions@lakeside.edu" {
		t.Fatalf("unexpected forward: key=%q payload=%+v", key, got)
	}
}

func TestEmailWebhook_FailureIsSwallowed(t *testing.T) {
	w := NewEmailWebhook(NewBestEffortClient(50*time.Millisecond, false), "http://127.0.0.1:1/hook")
	w.Forward(context.Background(), interfaces.EmailNotification{IdempotencyKey: "k"})
}
