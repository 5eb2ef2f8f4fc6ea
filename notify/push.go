// Package notify web-pushes owner notifications for new contact messages.
package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/logger"
	"portfolio/models"
)

// sendFunc matches webpush.SendNotification; tests substitute a stub.
type sendFunc func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

type Pusher struct {
	subs       database.Collection
	publicKey  string
	privateKey string
	subscriber string
	send       sendFunc
}

func NewPusher(subs database.Collection, publicKey, privateKey, subscriber string) *Pusher {
	return &Pusher{
		subs:       subs,
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		send:       webpush.SendNotification,
	}
}

// Enabled reports whether VAPID keys are configured. When disabled the
// pusher is a silent no-op.
func (p *Pusher) Enabled() bool {
	return p.publicKey != "" && p.privateKey != ""
}

func (p *Pusher) PublicKey() string {
	return p.publicKey
}

// Subscribe stores one browser subscription, keyed by its endpoint URL.
func (p *Pusher) Subscribe(ctx context.Context, sub webpush.Subscription) error {
	return p.subs.UpsertOne(ctx,
		bson.M{"endpoint": sub.Endpoint},
		bson.M{
			"$set": bson.M{"sub": sub},
			"$setOnInsert": bson.M{
				"_id":       primitive.NewObjectID(),
				"createdAt": time.Now().Unix(),
			},
		},
	)
}

// NewMessage pushes a notification to every subscribed browser. Entirely
// best-effort and asynchronous: a push failure never reaches the visitor
// who submitted the form.
func (p *Pusher) NewMessage(msg models.Message) {
	if !p.Enabled() {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Errorw("panic in push notification", "recover", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		p.deliver(ctx, msg)
	}()
}

func (p *Pusher) deliver(ctx context.Context, msg models.Message) {
	var subs []models.PushSubscription
	if err := p.subs.FindAll(ctx, bson.M{}, nil, &subs); err != nil {
		logger.L().Warnw("failed to load push subscriptions", "error", err)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"title": "New message from " + msg.Name,
		"body":  msg.Subject,
		"data":  map[string]any{"url": "/admin/messages"},
	})
	if err != nil {
		logger.L().Warnw("failed to marshal push payload", "error", err)
		return
	}

	for _, sub := range subs {
		p.pushTo(ctx, sub, payload)
	}
}

func (p *Pusher) pushTo(ctx context.Context, sub models.PushSubscription, payload []byte) {
	resp, err := p.send(payload, &sub.Sub, &webpush.Options{
		Subscriber:      p.subscriber,
		VAPIDPublicKey:  p.publicKey,
		VAPIDPrivateKey: p.privateKey,
		TTL:             60,
	})
	if err != nil {
		// Transport failure; the subscription may still be alive.
		logger.L().Warnw("push notification failed", "endpoint", sub.Endpoint, "error", err)
		return
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		// The push service says the subscription no longer exists; drop it.
		if _, err := p.subs.DeleteOne(ctx, bson.M{"endpoint": sub.Endpoint}); err != nil {
			logger.L().Warnw("failed to delete expired subscription", "endpoint", sub.Endpoint, "error", err)
		}
	case resp.StatusCode >= 300:
		logger.L().Warnw("push notification rejected", "endpoint", sub.Endpoint, "status", resp.StatusCode)
	}
}
