package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/domain/repository"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(tasksCollection)}
}

func byTaskDateAsc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "task_date", Value: 1}})
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]entity.Task, error) {
	return r.find(ctx, bson.M{})
}

func (r *TaskRepository) FindByUser(ctx context.Context, userID string, completed *bool) ([]entity.Task, error) {
	filter := bson.M{"userId": userID}
	if completed != nil {
		filter["completed"] = *completed
	}
	return r.find(ctx, filter)
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M) ([]entity.Task, error) {
	cur, err := r.col.Find(ctx, filter, byTaskDateAsc())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := []entity.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never address a document.
		return nil, repository.ErrNotFound
	}
	t := &entity.Task{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Insert(ctx context.Context, t *entity.Task) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *TaskRepository) Update(ctx context.Context, id string, data entity.TaskUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	// Blind overwrite of the mutable fields, no version check: the last
	// writer wins.
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       data.Title,
		"description": data.Description,
		"task_date":   data.TaskDate,
		"completed":   data.Completed,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
