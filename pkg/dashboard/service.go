package dashboard

import (
	"fmt"
	"time"

	"agro/entities"
	"agro/pkg/proximity"
)

type machineLister interface {
	List() ([]entities.Machine, error)
}

type taskLister interface {
	List(filter string) ([]entities.Task, error)
}

type fertilizationLister interface {
	List() ([]entities.FertilizationRecord, error)
}

type fieldLister interface {
	List() ([]entities.Field, error)
}

type Service struct {
	machines       machineLister
	tasks          taskLister
	fertilizations fertilizationLister
	fields         fieldLister
	now            proximity.Clock
	opts           Options
}

func NewService(m machineLister, t taskLister, f fertilizationLister, c fieldLister, now proximity.Clock, o Options) *Service {
	return &Service{machines: m, tasks: t, fertilizations: f, fields: c, now: now, opts: o}
}

func (s *Service) Snapshot() (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Machines, err = s.machines.List(); err != nil {
		return Snapshot{}, fmt.Errorf("machines: %w", err)
	}
	if snap.Tasks, err = s.tasks.List(""); err != nil {
		return Snapshot{}, fmt.Errorf("tasks: %w", err)
	}
	if snap.Fertilizations, err = s.fertilizations.List(); err != nil {
		return Snapshot{}, fmt.Errorf("fertilizations: %w", err)
	}
	if snap.Fields, err = s.fields.List(); err != nil {
		return Snapshot{}, fmt.Errorf("fields: %w", err)
	}
	return snap, nil
}

func (s *Service) Summary() (Summary, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	return Compute(s.now(), snap, s.opts), nil
}

// Now reports the service clock.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) Options() Options { return s.opts }
