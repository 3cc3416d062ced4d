package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/respond"
	"agro/pkg/status"
	"agro/pkg/task/service"
)

type TaskCtrl struct{ s service.TaskService }

func New(s service.TaskService) *TaskCtrl { return &TaskCtrl{s} }

type taskView struct {
	entities.Task
	Badge         status.Badge `json:"badge"`
	PriorityBadge status.Badge `json:"priority_badge"`
	TypeLabel     string       `json:"type_label"`
}

func view(t entities.Task) taskView {
	b, _ := status.Task(t.Status)
	p, _ := status.Priority(t.Priority)
	return taskView{Task: t, Badge: b, PriorityBadge: p, TypeLabel: status.TaskType(t.Type)}
}

func (h *TaskCtrl) List(c echo.Context) error {
	ts, err := h.s.List(c.QueryParam("status"))
	if err != nil {
		return respond.Error(c, err)
	}
	out := make([]taskView, 0, len(ts))
	for _, t := range ts {
		out = append(out, view(t))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var d entities.TaskDraft
	if err := c.Bind(&d); err != nil {
		return respond.BadJSON(c)
	}
	t, err := h.s.Create(d)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, view(t))
}

func (h *TaskCtrl) Stats(c echo.Context) error {
	st, err := h.s.Stats()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	var body struct {
		Status         string   `json:"status"`
		CompletedHours *float64 `json:"completed_hours"`
	}
	if err := c.Bind(&body); err != nil {
		return respond.BadJSON(c)
	}
	var st entities.TaskStatus
	if body.Status != "" {
		var err error
		if st, err = entities.ParseTaskStatus(body.Status); err != nil {
			return respond.Error(c, err)
		}
	}
	t, err := h.s.Patch(c.Param("id"), st, body.CompletedHours)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(t))
}

func (h *TaskCtrl) Reconcile(c echo.Context) error {
	ids, err := h.s.Reconcile()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"overdue": ids})
}
