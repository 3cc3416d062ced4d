package serviceImp

import (
	"sync"

	"go.uber.org/zap"

	"agro/entities"
	repo "agro/pkg/field/repository"
	"agro/pkg/field/service"
	"agro/pkg/proximity"
	"agro/pkg/record"
	"agro/pkg/soil"
	"agro/pkg/stats"
	"agro/pkg/telemetry"
)

type fieldSvc struct {
	mu  sync.Mutex
	r   repo.FieldRepository
	now proximity.Clock
	rec telemetry.Recorder
	log *zap.Logger
}

func NewFieldService(r repo.FieldRepository, now proximity.Clock, rec telemetry.Recorder, log *zap.Logger) service.FieldService {
	return &fieldSvc{r: r, now: now, rec: rec, log: log.Named("field")}
}

func (s *fieldSvc) List() ([]entities.Field, error) { return s.r.List() }

func (s *fieldSvc) Get(id string) (entities.Field, error) {
	fs, err := s.r.List()
	if err != nil {
		return entities.Field{}, err
	}
	f, _, err := record.Find(fs, id)
	return f, err
}

func (s *fieldSvc) Create(d entities.FieldDraft) (entities.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fs, err := s.r.List()
	if err != nil {
		return entities.Field{}, err
	}
	id, err := s.r.NextID(entities.FieldPrefix)
	if err != nil {
		return entities.Field{}, err
	}
	f := entities.NewField(id, d, s.now())
	if err := s.r.Replace(record.Append(fs, f)); err != nil {
		return entities.Field{}, err
	}
	s.log.Info("field created", zap.String("id", id), zap.String("name", f.Name), zap.Float64("area", f.Area))
	return f, nil
}

func (s *fieldSvc) SetStatus(id string, st entities.FieldStatus) (entities.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fs, err := s.r.List()
	if err != nil {
		return entities.Field{}, err
	}
	cur, i, err := record.Find(fs, id)
	if err != nil {
		return entities.Field{}, err
	}
	if st == cur.Status {
		return cur, nil
	}
	next, err := record.Transition(fs, id, st)
	if err != nil {
		return entities.Field{}, err
	}
	if err := s.r.Replace(next); err != nil {
		return entities.Field{}, err
	}
	s.rec.Transition("field", string(cur.Status), string(st))
	s.log.Info("field status", zap.String("id", id), zap.String("from", string(cur.Status)), zap.String("to", string(st)))
	return next[i], nil
}

func (s *fieldSvc) Soil(id string) (soil.Report, error) {
	f, err := s.Get(id)
	if err != nil {
		return soil.Report{}, err
	}
	return soil.FieldReport(f), nil
}

func (s *fieldSvc) Stats() (stats.FieldStats, error) {
	fs, err := s.r.List()
	if err != nil {
		return stats.FieldStats{}, err
	}
	return stats.Fields(fs), nil
}

// Productivity lists the active cuarteles with the days left to harvest.
func (s *fieldSvc) Productivity() ([]proximity.HarvestForecast, error) {
	fs, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return proximity.Harvests(s.now(), fs), nil
}

func (s *fieldSvc) StatusCounts() (map[string]int, error) {
	fs, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return stats.StringKeys(stats.CountBy(fs, entities.Field.CurrentStatus)), nil
}

func (s *fieldSvc) Seed(fs []entities.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.r.List()
	if err != nil {
		return err
	}
	if len(cur) > 0 {
		return nil
	}
	if err := s.r.Replace(fs); err != nil {
		return err
	}
	s.log.Info("fields seeded", zap.Int("count", len(fs)))
	return nil
}
