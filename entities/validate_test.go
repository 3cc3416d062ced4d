package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	p, err = ParsePriority("alta")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgente")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTaskDraft_Validate(t *testing.T) {
	d, err := TaskDraft{Title: "Riego", DueDate: "2024-02-13"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, d.Priority)

	_, err = TaskDraft{Priority: PriorityLow}.Validate()
	assert.NoError(t, err)

	_, err = TaskDraft{Priority: "urgente"}.Validate()
	assert.ErrorIs(t, err, ErrUnknownStatus)

	for _, due := range []string{"13/02/2024", "2024-02-30", "mañana"} {
		_, err = TaskDraft{DueDate: due}.Validate()
		assert.ErrorIs(t, err, ErrInvalidDate, due)
	}
}

func TestFertilizationDraft_Validate(t *testing.T) {
	assert.NoError(t, FertilizationDraft{}.Validate())
	assert.NoError(t, FertilizationDraft{ApplicationDate: "2024-02-01", NextApplicationDate: "2024-03-01"}.Validate())
	assert.ErrorIs(t, FertilizationDraft{ApplicationDate: "2024-2-1"}.Validate(), ErrInvalidDate)
	assert.ErrorIs(t, FertilizationDraft{NextApplicationDate: "pronto"}.Validate(), ErrInvalidDate)
}
