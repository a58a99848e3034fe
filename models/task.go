package models

import "time"

// Task is a single task record owned by a user. Tasks are consumed read-only
// by the API: the listing endpoint returns them newest first, and no creation
// path exists inside this service.
type Task struct {
	// TaskID is the internal unique identifier of the task.
	TaskID int64 `json:"taskId"`

	// UserID references the owning user.
	UserID int64 `json:"userId"`

	// Description is the task text entered by the user.
	Description string `json:"description"`

	// CreatedAt orders the listing (newest first).
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
