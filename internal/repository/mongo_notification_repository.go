package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoNotificationRepository struct {
	collection *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{
		collection: db.Collection("notifications"),
	}
}

// Create inserts a new notification
func (r *MongoNotificationRepository) Create(ctx context.Context, input models.CreateNotificationInput) (*models.Notification, error) {
	notif := &models.Notification{
		ID:        primitive.NewObjectID().Hex(),
		UserID:    input.UserID,
		TaskID:    input.TaskID,
		Type:      input.Type,
		Message:   input.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, notif); err != nil {
		logrus.WithError(err).Error("Failed to insert notification")
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notif, nil
}

// FindByUserID returns all notifications for a user
func (r *MongoNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var notif models.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notif)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return &notif, nil
}

// CountUnread counts notifications the user has not opened yet
func (r *MongoNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead sets notification's Read to true
func (r *MongoNotificationRepository) MarkAsRead(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists matches on the task only; the notification type is not considered.
func (r *MongoNotificationRepository) Exists(ctx context.Context, userID, taskID string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "task_id": taskID},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}
	return true, nil
}

// DetachTask unlinks notifications from a deleted task
func (r *MongoNotificationRepository) DetachTask(ctx context.Context, taskID string) error {
	result, err := r.collection.UpdateMany(ctx, bson.M{"task_id": taskID}, bson.M{"$set": bson.M{"task_id": nil}})
	if err != nil {
		return fmt.Errorf("failed to detach notifications: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"task_id":  taskID,
		"detached": result.ModifiedCount,
	}).Debug("Notifications detached from task")
	return nil
}
