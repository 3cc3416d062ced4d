package serviceImp

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"agro/entities"
	repo "agro/pkg/machine/repository"
	"agro/pkg/machine/service"
	"agro/pkg/notice"
	"agro/pkg/proximity"
	"agro/pkg/record"
	"agro/pkg/stats"
	"agro/pkg/status"
	"agro/pkg/telemetry"
)

// Notifier shows the outcome of an operator action.
type Notifier interface {
	Publish(kind notice.Kind, message string)
}

type machineSvc struct {
	mu      sync.Mutex
	r       repo.MachineRepository
	now     proximity.Clock
	horizon int
	notices Notifier
	rec     telemetry.Recorder
	log     *zap.Logger
}

// NewMachineService builds the machinery service. horizon is the number
// of days ahead a scheduled maintenance starts alerting.
func NewMachineService(r repo.MachineRepository, now proximity.Clock, horizon int, notices Notifier, rec telemetry.Recorder, log *zap.Logger) service.MachineService {
	return &machineSvc{r: r, now: now, horizon: horizon, notices: notices, rec: rec, log: log.Named("machine")}
}

func (s *machineSvc) List() ([]entities.Machine, error) { return s.r.List() }

func (s *machineSvc) Get(id string) (entities.Machine, error) {
	ms, err := s.r.List()
	if err != nil {
		return entities.Machine{}, err
	}
	m, _, err := record.Find(ms, id)
	return m, err
}

func (s *machineSvc) Create(d entities.MachineDraft) (entities.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, err := s.r.List()
	if err != nil {
		return entities.Machine{}, err
	}
	id, err := s.r.NextID(entities.MachinePrefix(d.Type))
	if err != nil {
		return entities.Machine{}, err
	}
	m := entities.NewMachine(id, d)
	if err := s.r.Replace(record.Append(ms, m)); err != nil {
		return entities.Machine{}, err
	}
	s.log.Info("machine created", zap.String("id", id), zap.String("type", d.Type))
	return m, nil
}

// Act applies an operator action and publishes its outcome as a notice.
func (s *machineSvc) Act(id string, a entities.MachineAction) (entities.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, from, err := s.act(id, a)
	if err != nil {
		s.notices.Publish(notice.Error, err.Error())
		s.log.Warn("machine action rejected", zap.String("id", id), zap.String("action", string(a)), zap.Error(err))
		return entities.Machine{}, err
	}
	s.rec.Transition("machine", string(from), string(m.Status))
	s.notices.Publish(notice.Success, fmt.Sprintf("Acción %q ejecutada correctamente en %s", string(a), id))
	s.log.Info("machine action", zap.String("id", id), zap.String("action", string(a)),
		zap.String("from", string(from)), zap.String("to", string(m.Status)))
	return m, nil
}

func (s *machineSvc) act(id string, a entities.MachineAction) (entities.Machine, entities.MachineStatus, error) {
	to, err := a.Target()
	if err != nil {
		return entities.Machine{}, "", err
	}
	ms, err := s.r.List()
	if err != nil {
		return entities.Machine{}, "", err
	}
	cur, _, err := record.Find(ms, id)
	if err != nil {
		return entities.Machine{}, "", err
	}
	next, err := record.Transition(ms, id, to)
	if err != nil {
		return entities.Machine{}, "", err
	}
	if err := s.r.Replace(next); err != nil {
		return entities.Machine{}, "", err
	}
	return cur.WithStatus(to), cur.Status, nil
}

func (s *machineSvc) Badge(id string) (status.Badge, error) {
	m, err := s.Get(id)
	if err != nil {
		return status.Badge{}, err
	}
	return status.Machine(m.Status)
}

func (s *machineSvc) Stats() (stats.MachineStats, error) {
	ms, err := s.r.List()
	if err != nil {
		return stats.MachineStats{}, err
	}
	return stats.Machines(ms), nil
}

func (s *machineSvc) Alerts() ([]proximity.MaintenanceAlert, error) {
	ms, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return proximity.MaintenanceDue(s.now(), ms, s.horizon), nil
}

func (s *machineSvc) StatusCounts() (map[string]int, error) {
	ms, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return stats.StringKeys(stats.CountBy(ms, entities.Machine.CurrentStatus)), nil
}

// Seed loads ms into an empty collection. A collection that already holds
// records is left alone.
func (s *machineSvc) Seed(ms []entities.Machine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.r.List()
	if err != nil {
		return err
	}
	if len(cur) > 0 {
		return nil
	}
	if err := s.r.Replace(ms); err != nil {
		return err
	}
	s.log.Info("machines seeded", zap.Int("count", len(ms)))
	return nil
}
