package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/fertilization/service"
	"agro/pkg/respond"
	"agro/pkg/status"
)

type FertCtrl struct{ s service.FertilizationService }

func New(s service.FertilizationService) *FertCtrl { return &FertCtrl{s} }

type recordView struct {
	entities.FertilizationRecord
	Badge status.Badge `json:"badge"`
}

func views(rs []entities.FertilizationRecord) []recordView {
	out := make([]recordView, 0, len(rs))
	for _, r := range rs {
		out = append(out, view(r))
	}
	return out
}

func view(r entities.FertilizationRecord) recordView {
	b, _ := status.Fertilization(r.Status)
	return recordView{FertilizationRecord: r, Badge: b}
}

func (h *FertCtrl) List(c echo.Context) error {
	rs, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, views(rs))
}

func (h *FertCtrl) Create(c echo.Context) error {
	var d entities.FertilizationDraft
	if err := c.Bind(&d); err != nil {
		return respond.BadJSON(c)
	}
	r, err := h.s.Create(d)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, view(r))
}

func (h *FertCtrl) Stats(c echo.Context) error {
	st, err := h.s.Stats()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *FertCtrl) Upcoming(c echo.Context) error {
	rs, err := h.s.Upcoming()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, views(rs))
}

func (h *FertCtrl) Patch(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respond.BadJSON(c)
	}
	st, err := entities.ParseFertilizationStatus(body.Status)
	if err != nil {
		return respond.Error(c, err)
	}
	r, err := h.s.SetStatus(c.Param("id"), st)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(r))
}

func (h *FertCtrl) Reconcile(c echo.Context) error {
	ids, err := h.s.Reconcile()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"overdue": ids})
}

func (h *FertCtrl) Fertilizers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.Catalog())
}
