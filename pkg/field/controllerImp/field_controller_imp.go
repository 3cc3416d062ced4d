package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/field/service"
	"agro/pkg/respond"
	"agro/pkg/soil"
	"agro/pkg/status"
)

type FieldCtrl struct{ s service.FieldService }

func New(s service.FieldService) *FieldCtrl { return &FieldCtrl{s} }

// fieldView adds the display badges and the soil score to a cuartel.
type fieldView struct {
	entities.Field
	Badge            status.Badge `json:"badge"`
	ProductivityBand status.Band  `json:"productivity_band"`
	SoilScore        int          `json:"soil_score"`
	SoilBand         status.Band  `json:"soil_band"`
}

func view(f entities.Field) fieldView {
	b, _ := status.Field(f.Status)
	score := soil.FieldScore(f)
	return fieldView{
		Field:            f,
		Badge:            b,
		ProductivityBand: status.Productivity(f.Productivity),
		SoilScore:        score,
		SoilBand:         status.SoilHealth(score),
	}
}

func (h *FieldCtrl) List(c echo.Context) error {
	fs, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	out := make([]fieldView, 0, len(fs))
	for _, f := range fs {
		out = append(out, view(f))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var d entities.FieldDraft
	if err := c.Bind(&d); err != nil {
		return respond.BadJSON(c)
	}
	f, err := h.s.Create(d)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, view(f))
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(f))
}

func (h *FieldCtrl) Stats(c echo.Context) error {
	st, err := h.s.Stats()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *FieldCtrl) Productivity(c echo.Context) error {
	hs, err := h.s.Productivity()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *FieldCtrl) Soil(c echo.Context) error {
	r, err := h.s.Soil(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *FieldCtrl) Patch(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respond.BadJSON(c)
	}
	st, err := entities.ParseFieldStatus(body.Status)
	if err != nil {
		return respond.Error(c, err)
	}
	f, err := h.s.SetStatus(c.Param("id"), st)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(f))
}
