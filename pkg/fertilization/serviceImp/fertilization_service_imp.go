package serviceImp

import (
	"sync"

	"go.uber.org/zap"

	"agro/entities"
	repo "agro/pkg/fertilization/repository"
	"agro/pkg/fertilization/service"
	"agro/pkg/fertilizer"
	"agro/pkg/proximity"
	"agro/pkg/record"
	"agro/pkg/stats"
	"agro/pkg/telemetry"
)

type fertSvc struct {
	mu      sync.Mutex
	r       repo.FertilizationRepository
	catalog *fertilizer.Catalog
	now     proximity.Clock
	window  int
	rec     telemetry.Recorder
	log     *zap.Logger
}

// NewFertilizationService builds the fertilization service. window is the
// number of days ahead an application counts as upcoming.
func NewFertilizationService(r repo.FertilizationRepository, catalog *fertilizer.Catalog, now proximity.Clock, window int, rec telemetry.Recorder, log *zap.Logger) service.FertilizationService {
	return &fertSvc{r: r, catalog: catalog, now: now, window: window, rec: rec, log: log.Named("fertilization")}
}

func (s *fertSvc) List() ([]entities.FertilizationRecord, error) { return s.r.List() }

func (s *fertSvc) Create(d entities.FertilizationDraft) (entities.FertilizationRecord, error) {
	if err := d.Validate(); err != nil {
		return entities.FertilizationRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.r.List()
	if err != nil {
		return entities.FertilizationRecord{}, err
	}
	id, err := s.r.NextID(entities.FertilizationPrefix)
	if err != nil {
		return entities.FertilizationRecord{}, err
	}
	f := entities.NewFertilizationRecord(id, d, s.catalog.Composition(d.FertilizerType))
	if err := s.r.Replace(record.Append(rs, f)); err != nil {
		return entities.FertilizationRecord{}, err
	}
	s.log.Info("application scheduled", zap.String("id", id), zap.String("field", f.Field), zap.String("fertilizer", f.FertilizerType))
	return f, nil
}

func (s *fertSvc) SetStatus(id string, st entities.FertilizationStatus) (entities.FertilizationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.r.List()
	if err != nil {
		return entities.FertilizationRecord{}, err
	}
	cur, i, err := record.Find(rs, id)
	if err != nil {
		return entities.FertilizationRecord{}, err
	}
	if st == cur.Status {
		return cur, nil
	}
	next, err := record.Transition(rs, id, st)
	if err != nil {
		return entities.FertilizationRecord{}, err
	}
	if err := s.r.Replace(next); err != nil {
		return entities.FertilizationRecord{}, err
	}
	s.rec.Transition("fertilization", string(cur.Status), string(st))
	s.log.Info("application status", zap.String("id", id), zap.String("from", string(cur.Status)), zap.String("to", string(st)))
	return next[i], nil
}

func (s *fertSvc) Stats() (stats.FertilizationStats, error) {
	rs, err := s.r.List()
	if err != nil {
		return stats.FertilizationStats{}, err
	}
	return stats.Fertilizations(rs), nil
}

func (s *fertSvc) Upcoming() ([]entities.FertilizationRecord, error) {
	rs, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return proximity.UpcomingApplications(s.now(), rs, s.window), nil
}

// Reconcile marks scheduled applications past their next date as vencida.
func (s *fertSvc) Reconcile() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, err := s.r.List()
	if err != nil {
		return nil, err
	}
	next, changed := proximity.ReconcileFertilizations(s.now(), rs)
	if len(changed) == 0 {
		return []string{}, nil
	}
	if err := s.r.Replace(next); err != nil {
		return nil, err
	}
	for range changed {
		s.rec.Transition("fertilization", string(entities.FertilizationScheduled), string(entities.FertilizationOverdue))
	}
	s.log.Info("applications reconciled", zap.Strings("overdue", changed))
	return changed, nil
}

func (s *fertSvc) Catalog() *fertilizer.Catalog { return s.catalog }

func (s *fertSvc) StatusCounts() (map[string]int, error) {
	rs, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return stats.StringKeys(stats.CountBy(rs, entities.FertilizationRecord.CurrentStatus)), nil
}

func (s *fertSvc) Seed(rs []entities.FertilizationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.r.List()
	if err != nil {
		return err
	}
	if len(cur) > 0 {
		return nil
	}
	if err := s.r.Replace(rs); err != nil {
		return err
	}
	s.log.Info("applications seeded", zap.Int("count", len(rs)))
	return nil
}
