package databases

// go generate: mockery --name NotificationDatabase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legalaid-ng/legalaid-api/models"
)

const notificationName = "notifications"

// NotificationDatabase contains the methods to use with the notification database
type NotificationDatabase interface {
	Insert(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	FindByRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus, attempts int, at time.Time) error
	FindEmailRetries(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int64) ([]models.Notification, error)
}

type notificationDatabase struct {
	db DatabaseHelper
}

// NewNotificationDatabase initializes a new instance of notification database with the provided db connection
func NewNotificationDatabase(db DatabaseHelper) NotificationDatabase {
	return &notificationDatabase{
		db: db,
	}
}

func (n *notificationDatabase) Insert(ctx context.Context, notification *models.Notification) error {
	_, err := n.db.Collection(notificationName).InsertOne(ctx, notification)
	return translate("insert notification", err)
}

func (n *notificationDatabase) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	notification := &models.Notification{}
	err := n.db.Collection(notificationName).FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		return nil, translate("find notification", err)
	}
	return notification, nil
}

// MarkRead only stamps readAt the first time; repeating the call is a no-op that still
// succeeds as long as the notification exists.
func (n *notificationDatabase) MarkRead(ctx context.Context, id string, at time.Time) error {
	filter := bson.M{"_id": id, "notification.read": false}
	update := bson.M{"$set": bson.M{
		"notification.read":      true,
		"notification.readAt":    at,
		"notification.updatedAt": at,
	}}
	res, err := n.db.Collection(notificationName).UpdateOne(ctx, filter, update)
	if err != nil {
		return translate("mark notification read", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	count, err := n.db.Collection(notificationName).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("mark notification read", err)
	}
	if count == 0 {
		return fmt.Errorf("mark notification read: %w", ErrNotFound)
	}
	return nil
}

func (n *notificationDatabase) FindByRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	opts := newMongoPaginate(limit, 1).getPaginatedOpts(bson.D{{Key: "notification.createdAt", Value: -1}})
	return n.find(ctx, bson.M{"notification.recipientId": recipientID}, opts)
}

func (n *notificationDatabase) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	count, err := n.db.Collection(notificationName).CountDocuments(ctx, bson.M{
		"notification.recipientId": recipientID,
		"notification.read":        false,
	})
	if err != nil {
		return 0, translate("count unread notifications", err)
	}
	return count, nil
}

func (n *notificationDatabase) UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus, attempts int, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"notification.emailStatus":   status,
		"notification.emailAttempts": attempts,
		"notification.updatedAt":     at,
	}}
	res, err := n.db.Collection(notificationName).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return translate("update email status", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update email status: %w", ErrNotFound)
	}
	return nil
}

func (n *notificationDatabase) FindEmailRetries(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int64) ([]models.Notification, error) {
	filter := bson.M{
		"notification.emailAttempts": bson.M{"$lt": maxAttempts},
		"$or": bson.A{
			bson.M{"notification.emailStatus": models.EmailFailed},
			bson.M{
				"notification.emailStatus": models.EmailPending,
				"notification.updatedAt":   bson.M{"$lt": staleBefore},
			},
		},
	}
	opts := newMongoPaginate(limit, 1).getPaginatedOpts(bson.D{{Key: "notification.createdAt", Value: 1}})
	return n.find(ctx, filter, opts)
}

func (n *notificationDatabase) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Notification, error) {
	cursor, err := n.db.Collection(notificationName).Find(ctx, filter, opts)
	if err != nil {
		return nil, translate("find notifications", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, translate("decode notifications", err)
	}
	return notifications, nil
}
