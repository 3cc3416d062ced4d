package entities

import (
	"fmt"
	"time"
)

// ParsePriority reads a task priority. An empty value means media.
func ParsePriority(v string) (Priority, error) {
	switch p := Priority(v); p {
	case "":
		return PriorityMedium, nil
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("priority %q: %w", v, ErrUnknownStatus)
}

// checkDate accepts an empty value or a YYYY-MM-DD date.
func checkDate(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return fmt.Errorf("%s %q: %w", field, v, ErrInvalidDate)
	}
	return nil
}

// Validate normalises the priority and checks the due date.
func (d TaskDraft) Validate() (TaskDraft, error) {
	p, err := ParsePriority(string(d.Priority))
	if err != nil {
		return d, err
	}
	d.Priority = p
	if err := checkDate("due_date", d.DueDate); err != nil {
		return d, err
	}
	return d, nil
}

func (d FertilizationDraft) Validate() error {
	if err := checkDate("application_date", d.ApplicationDate); err != nil {
		return err
	}
	return checkDate("next_application_date", d.NextApplicationDate)
}
