package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskDateLayout is the accepted format for the user-facing task_date field.
// The raw string is persisted as-is; ascending lexicographic order of this
// layout matches chronological order, which list queries rely on.
const TaskDateLayout = "2006-01-02 15:04"

// Task is stored in the `tasks` collection. UserID references the owner's
// document id; nothing enforces that reference at the store level.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	TaskDate    string             `bson:"task_date" json:"task_date"`
	Completed   bool               `bson:"completed" json:"completed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// TaskUpdate carries the full set of mutable fields. Updates overwrite all
// four; there are no partial-field semantics.
type TaskUpdate struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	TaskDate    string `bson:"task_date" json:"task_date"`
	Completed   bool   `bson:"completed" json:"completed"`
}
