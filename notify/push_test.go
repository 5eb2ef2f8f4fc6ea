package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
	"portfolio/models"
)

func pushResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

// stubSend answers each endpoint with a canned status (or error) and records
// every delivery attempt.
type stubSend struct {
	statuses map[string]int
	errs     map[string]error
	sent     []string
}

func (s *stubSend) send(_ []byte, sub *webpush.Subscription, _ *webpush.Options) (*http.Response, error) {
	s.sent = append(s.sent, sub.Endpoint)
	if err := s.errs[sub.Endpoint]; err != nil {
		return nil, err
	}
	status, ok := s.statuses[sub.Endpoint]
	if !ok {
		status = http.StatusCreated
	}
	return pushResponse(status), nil
}

func newPusherFixture(t *testing.T, endpoints ...string) (*Pusher, *memstore.Collection, *stubSend) {
	t.Helper()

	subs := memstore.New()
	pusher := NewPusher(subs, "public", "private", "mailto:owner@example.com")
	stub := &stubSend{statuses: map[string]int{}, errs: map[string]error{}}
	pusher.send = stub.send

	for _, e := range endpoints {
		require.NoError(t, pusher.Subscribe(context.Background(), webpush.Subscription{Endpoint: e}))
	}
	return pusher, subs, stub
}

func TestDeliverDropsExpiredSubscriptions(t *testing.T) {
	pusher, subs, stub := newPusherFixture(t,
		"https://push.example/alive",
		"https://push.example/gone",
		"https://push.example/vanished",
	)
	stub.statuses["https://push.example/gone"] = http.StatusGone
	stub.statuses["https://push.example/vanished"] = http.StatusNotFound

	pusher.deliver(context.Background(), models.Message{Name: "Visitor", Subject: "Hi"})

	// Every subscription was attempted once.
	assert.ElementsMatch(t, []string{
		"https://push.example/alive",
		"https://push.example/gone",
		"https://push.example/vanished",
	}, stub.sent)

	// Only the live one survives.
	require.Equal(t, 1, subs.Len())
	var remaining []models.PushSubscription
	require.NoError(t, subs.FindAll(context.Background(), nil, nil, &remaining))
	require.Len(t, remaining, 1)
	assert.Equal(t, "https://push.example/alive", remaining[0].Endpoint)
}

func TestDeliverKeepsSubscriptionOnTransportError(t *testing.T) {
	pusher, subs, stub := newPusherFixture(t, "https://push.example/flaky")
	stub.errs["https://push.example/flaky"] = fmt.Errorf("connection reset")

	pusher.deliver(context.Background(), models.Message{Name: "Visitor", Subject: "Hi"})

	// A transport failure says nothing about the subscription's validity.
	assert.Equal(t, 1, subs.Len())
}

func TestDeliverKeepsSubscriptionOnRejection(t *testing.T) {
	pusher, subs, stub := newPusherFixture(t, "https://push.example/throttled")
	stub.statuses["https://push.example/throttled"] = http.StatusTooManyRequests

	pusher.deliver(context.Background(), models.Message{Name: "Visitor", Subject: "Hi"})

	// Rejected but not dead; keep it for next time.
	assert.Equal(t, 1, subs.Len())
}

func TestSubscribeUpsertsByEndpoint(t *testing.T) {
	pusher, subs, _ := newPusherFixture(t)
	ctx := context.Background()

	sub := webpush.Subscription{Endpoint: "https://push.example/browser"}
	require.NoError(t, pusher.Subscribe(ctx, sub))
	require.NoError(t, pusher.Subscribe(ctx, sub))

	assert.Equal(t, 1, subs.Len())
}

func TestDisabledPusherSendsNothing(t *testing.T) {
	subs := memstore.New()
	pusher := NewPusher(subs, "", "", "mailto:owner@example.com")
	stub := &stubSend{statuses: map[string]int{}, errs: map[string]error{}}
	pusher.send = stub.send

	require.NoError(t, pusher.Subscribe(context.Background(), webpush.Subscription{Endpoint: "https://push.example/browser"}))
	pusher.NewMessage(models.Message{Name: "Visitor", Subject: "Hi"})

	assert.False(t, pusher.Enabled())
	assert.Empty(t, stub.sent)
}
