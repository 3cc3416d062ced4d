package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/entities"
)

func TestEveryStatusHasABadge(t *testing.T) {
	for _, s := range entities.MachineStatuses() {
		_, err := Machine(s)
		require.NoError(t, err, s)
	}
	for _, s := range entities.TaskStatuses() {
		_, err := Task(s)
		require.NoError(t, err, s)
	}
	for _, s := range entities.FertilizationStatuses() {
		_, err := Fertilization(s)
		require.NoError(t, err, s)
	}
	for _, s := range entities.FieldStatuses() {
		_, err := Field(s)
		require.NoError(t, err, s)
	}
}

func TestBadgeLabels(t *testing.T) {
	b, err := Machine(entities.MachineInUse)
	require.NoError(t, err)
	assert.Equal(t, Badge{"En Uso", Info}, b)

	b, err = Field(entities.FieldResting)
	require.NoError(t, err)
	assert.Equal(t, Badge{"En Descanso", Neutral}, b)

	b, err = Fertilization(entities.FertilizationOverdue)
	require.NoError(t, err)
	assert.Equal(t, Badge{"Vencida", Danger}, b)

	b, err = Priority(entities.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, Badge{"Baja", Success}, b)
}

func TestUnknownStatus(t *testing.T) {
	_, err := Task(entities.TaskStatus("archivada"))
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
	assert.Contains(t, err.Error(), "archivada")

	_, err = Priority(entities.Priority("urgente"))
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}

func TestTaskTypeAndImportance(t *testing.T) {
	assert.Equal(t, "Control de Plagas", TaskType("control-plagas"))
	assert.Equal(t, "poda", TaskType("poda"))
	assert.Equal(t, Badge{"Alta", Danger}, Importance("Alta"))
	assert.Equal(t, Badge{"Media", Warning}, Importance("desconocida"))
}

func TestBands(t *testing.T) {
	tests := []struct {
		name string
		got  Band
		want Band
	}{
		{"fuel 71", Fuel(71), Good},
		{"fuel 70", Fuel(70), Fair},
		{"fuel 31", Fuel(31), Fair},
		{"fuel 30", Fuel(30), Poor},
		{"productivity 80", Productivity(80), Good},
		{"productivity 79", Productivity(79), Fair},
		{"productivity 59", Productivity(59), Poor},
		{"soil 80", SoilHealth(80), Good},
		{"soil 60", SoilHealth(60), Fair},
		{"soil 55", SoilHealth(55), Poor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, Danger, Poor.Category())
}
