package serviceImp

import (
	"sync"

	"go.uber.org/zap"

	"agro/entities"
	"agro/pkg/proximity"
	"agro/pkg/record"
	"agro/pkg/stats"
	repo "agro/pkg/task/repository"
	"agro/pkg/task/service"
	"agro/pkg/telemetry"
)

type taskSvc struct {
	mu  sync.Mutex
	r   repo.TaskRepository
	now proximity.Clock
	rec telemetry.Recorder
	log *zap.Logger
}

func NewTaskService(r repo.TaskRepository, now proximity.Clock, rec telemetry.Recorder, log *zap.Logger) service.TaskService {
	return &taskSvc{r: r, now: now, rec: rec, log: log.Named("task")}
}

func (s *taskSvc) List(filter string) ([]entities.Task, error) {
	ts, err := s.r.List()
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == "all" {
		return ts, nil
	}
	st, err := entities.ParseTaskStatus(filter)
	if err != nil {
		return nil, err
	}
	out := []entities.Task{}
	for _, t := range ts {
		if t.Status == st {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *taskSvc) Create(d entities.TaskDraft) (entities.Task, error) {
	d, err := d.Validate()
	if err != nil {
		return entities.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.r.List()
	if err != nil {
		return entities.Task{}, err
	}
	id, err := s.r.NextID(entities.TaskPrefix)
	if err != nil {
		return entities.Task{}, err
	}
	t := entities.NewTask(id, d, s.now())
	if err := s.r.Replace(record.Append(ts, t)); err != nil {
		return entities.Task{}, err
	}
	s.log.Info("task created", zap.String("id", id), zap.String("due", t.DueDate))
	return t, nil
}

// Patch moves a task to st along the task workflow and, when given,
// records the hours spent on it. An empty st keeps the current status.
func (s *taskSvc) Patch(id string, st entities.TaskStatus, completedHours *float64) (entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.r.List()
	if err != nil {
		return entities.Task{}, err
	}
	cur, i, err := record.Find(ts, id)
	if err != nil {
		return entities.Task{}, err
	}
	next := ts
	if st != "" && st != cur.Status {
		if next, err = record.Transition(ts, id, st); err != nil {
			return entities.Task{}, err
		}
	}
	if completedHours != nil {
		h := *completedHours
		next = append([]entities.Task(nil), next...)
		next[i].CompletedHours = &h
	}
	if err := s.r.Replace(next); err != nil {
		return entities.Task{}, err
	}
	if next[i].Status != cur.Status {
		s.rec.Transition("task", string(cur.Status), string(next[i].Status))
		s.log.Info("task status", zap.String("id", id), zap.String("from", string(cur.Status)), zap.String("to", string(next[i].Status)))
	}
	return next[i], nil
}

func (s *taskSvc) Stats() (stats.TaskStats, error) {
	ts, err := s.r.List()
	if err != nil {
		return stats.TaskStats{}, err
	}
	return stats.Tasks(ts), nil
}

// Reconcile marks open tasks past their due date as vencida and returns
// the ids it changed.
func (s *taskSvc) Reconcile() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, err := s.r.List()
	if err != nil {
		return nil, err
	}
	next, changed := proximity.ReconcileTasks(s.now(), ts)
	if len(changed) == 0 {
		return []string{}, nil
	}
	if err := s.r.Replace(next); err != nil {
		return nil, err
	}
	for i, t := range ts {
		if next[i].Status != t.Status {
			s.rec.Transition("task", string(t.Status), string(next[i].Status))
		}
	}
	s.log.Info("tasks reconciled", zap.Strings("overdue", changed))
	return changed, nil
}

func (s *taskSvc) StatusCounts() (map[string]int, error) {
	ts, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return stats.StringKeys(stats.CountBy(ts, entities.Task.CurrentStatus)), nil
}

func (s *taskSvc) Seed(ts []entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.r.List()
	if err != nil {
		return err
	}
	if len(cur) > 0 {
		return nil
	}
	if err := s.r.Replace(ts); err != nil {
		return err
	}
	s.log.Info("tasks seeded", zap.Int("count", len(ts)))
	return nil
}
