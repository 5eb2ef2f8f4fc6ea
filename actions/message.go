package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/models"
)

// Notifier is told about new contact messages. Implementations must not
// block or fail the submission.
type Notifier interface {
	NewMessage(msg models.Message)
}

type Messages struct {
	repo     repo[models.Message]
	notifier Notifier
}

func NewMessages(coll database.Collection, notifier Notifier) *Messages {
	return &Messages{
		repo:     repo[models.Message]{coll: coll, label: "message", sortKey: "createdAt"},
		notifier: notifier,
	}
}

type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (in *MessageInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if strings.TrimSpace(in.Subject) == "" {
		return &ValidationError{Field: "subject", Reason: "is required"}
	}
	if strings.TrimSpace(in.Body) == "" {
		return &ValidationError{Field: "message", Reason: "is required"}
	}
	return nil
}

func (m *Messages) Create(ctx context.Context, in MessageInput) (*models.Message, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	doc := models.Message{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Body:      in.Body,
		Read:      false,
		CreatedAt: nowUnix(),
	}
	if err := m.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	if m.notifier != nil {
		m.notifier.NewMessage(doc)
	}
	return &doc, nil
}

func (m *Messages) List(ctx context.Context, unreadOnly bool) ([]models.Message, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["read"] = false
	}
	return m.repo.find(ctx, filter)
}

func (m *Messages) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return m.repo.updateByID(ctx, id, bson.M{"read": true})
}

func (m *Messages) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.repo.deleteByID(ctx, id)
}

func (m *Messages) UnreadCount(ctx context.Context) (int64, error) {
	return m.repo.count(ctx, bson.M{"read": false})
}
