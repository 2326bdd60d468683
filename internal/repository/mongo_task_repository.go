package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskRepository stores tasks in the "tasks" collection.
type MongoTaskRepository struct {
	collection *mongo.Collection
}

// NewMongoTaskRepository creates a new instance of MongoTaskRepository
func NewMongoTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{
		collection: db.Collection("tasks"),
	}
}

// Create inserts a new task
func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := time.Now()
	task.ID = primitive.NewObjectID().Hex()
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		logger.Log.WithError(err).Error("Failed to insert task")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.Log.WithField("task_id", task.ID).Info("Task created successfully")
	return task, nil
}

// FindByID fetches a task by its ID
func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id).Error("Failed to find task by ID")
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

// FindByUserID fetches all tasks of a user, earliest due date first
func (r *MongoTaskRepository) FindByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to fetch tasks")
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		logger.Log.WithError(err).Error("Failed to decode tasks")
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"user_id": userID,
		"count":   len(tasks),
	}).Debug("Tasks fetched successfully")
	return tasks, nil
}

// Update replaces the stored task with the given one
func (r *MongoTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", task.ID).Error("Failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	logger.Log.WithField("task_id", task.ID).Info("Task updated successfully")
	return task, nil
}

// Delete deletes a task by its ID
func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id).Error("Failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("task_id", id).Info("Task deleted successfully")
	return nil
}

// MarkComplete sets the status to Completed and stamps the completion time
func (r *MongoTaskRepository) MarkComplete(ctx context.Context, id string, actualTime *int) (*models.Task, error) {
	now := time.Now()
	set := bson.M{
		"status":       models.StatusCompleted,
		"completed_at": now,
		"updated_at":   now,
	}
	if actualTime != nil {
		set["actual_time"] = *actualTime
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id).Error("Failed to complete task")
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	logger.Log.WithField("task_id", id).Info("Task marked as completed")
	return &task, nil
}
