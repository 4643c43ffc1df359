// domain/models/todolist.go

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/types"
)

// TaskPriority - priority level of a checklist item
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the three allowed levels.
func (p TaskPriority) Valid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// ChecklistItem - one task inside a list's ordered sequence. Order is
// user-controlled and meaningful.
type ChecklistItem struct {
	ID          string       `json:"id"`
	Task        string       `json:"task"` // required, non-empty after trim
	Completed   bool         `json:"completed"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date,omitempty"` // YYYY-MM-DD
	Description string       `json:"description,omitempty"`
}

// ChecklistItems maps the ordered item sequence onto a jsonb column.
type ChecklistItems []ChecklistItem

// Value serializes the items for storage.
func (items ChecklistItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

// Scan deserializes a jsonb column into the item sequence.
func (items *ChecklistItems) Scan(value interface{}) error {
	if value == nil {
		*items = ChecklistItems{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for ChecklistItems scan")
	}

	if len(data) == 0 {
		*items = ChecklistItems{}
		return nil
	}
	return json.Unmarshal(data, items)
}

// TodoList - an ordered task list owned by one user. Tags are referenced by
// id (many-to-many), not owned; deleting a tag strips the reference here.
type TodoList struct {
	ID      uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title   string            `json:"title" gorm:"type:varchar(255)"`
	Color   string            `json:"color,omitempty" gorm:"type:varchar(20)"`
	Items   ChecklistItems    `json:"items" gorm:"type:jsonb;default:'[]'::jsonb"`
	TagIDs  types.StringArray `json:"tag_ids" gorm:"type:jsonb;default:'[]'::jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Owner *User `json:"owner,omitempty" gorm:"foreignkey:OwnerID"`
}

// TableName - table name in the database
func (TodoList) TableName() string {
	return "todo_lists"
}

// HasTag reports whether the list references the given tag id.
func (l *TodoList) HasTag(tagID string) bool {
	for _, id := range l.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
