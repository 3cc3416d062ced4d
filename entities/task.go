package entities

import "time"

type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

type Task struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Position       int        `gorm:"index" json:"-"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Type           string     `json:"type"` // siembra|riego|fertilizacion|cosecha|mantenimiento|control-plagas
	Priority       Priority   `json:"priority"`
	Status         TaskStatus `gorm:"index" json:"status"`
	AssignedTo     string     `json:"assigned_to"`
	Field          string     `json:"field"`
	DueDate        string     `json:"due_date"`
	CreatedDate    string     `json:"created_date"`
	EstimatedHours float64    `json:"estimated_hours"`
	CompletedHours *float64   `json:"completed_hours,omitempty"`
}

func (t Task) RecordID() string          { return t.ID }
func (t Task) CurrentStatus() TaskStatus { return t.Status }
func (t Task) WithStatus(s TaskStatus) Task {
	t.Status = s
	return t
}

type TaskDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Priority       Priority `json:"priority"`
	AssignedTo     string   `json:"assigned_to"`
	Field          string   `json:"field"`
	DueDate        string   `json:"due_date"`
	EstimatedHours float64  `json:"estimated_hours"`
}

const TaskPrefix = "T"

func NewTask(id string, d TaskDraft, today time.Time) Task {
	hours := d.EstimatedHours
	if hours == 0 {
		hours = 1
	}
	return Task{
		ID:             id,
		Title:          d.Title,
		Description:    d.Description,
		Type:           d.Type,
		Priority:       d.Priority,
		Status:         TaskPending,
		AssignedTo:     d.AssignedTo,
		Field:          d.Field,
		DueDate:        d.DueDate,
		CreatedDate:    today.Format(DateLayout),
		EstimatedHours: hours,
	}
}
