package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/machine/service"
	"agro/pkg/respond"
	"agro/pkg/status"
)

type MachineCtrl struct{ s service.MachineService }

func New(s service.MachineService) *MachineCtrl { return &MachineCtrl{s} }

// machineView is a machine with its display badge and fuel band.
type machineView struct {
	entities.Machine
	Badge    status.Badge `json:"badge"`
	FuelBand status.Band  `json:"fuel_band"`
}

func view(m entities.Machine) machineView {
	b, _ := status.Machine(m.Status)
	return machineView{Machine: m, Badge: b, FuelBand: status.Fuel(m.FuelLevel)}
}

func (h *MachineCtrl) List(c echo.Context) error {
	ms, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	out := make([]machineView, 0, len(ms))
	for _, m := range ms {
		out = append(out, view(m))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MachineCtrl) Create(c echo.Context) error {
	var d entities.MachineDraft
	if err := c.Bind(&d); err != nil {
		return respond.BadJSON(c)
	}
	m, err := h.s.Create(d)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, view(m))
}

func (h *MachineCtrl) Get(c echo.Context) error {
	m, err := h.s.Get(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(m))
}

func (h *MachineCtrl) Stats(c echo.Context) error {
	st, err := h.s.Stats()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *MachineCtrl) Alerts(c echo.Context) error {
	as, err := h.s.Alerts()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, as)
}

func (h *MachineCtrl) Act(c echo.Context) error {
	m, err := h.s.Act(c.Param("id"), entities.MachineAction(c.Param("action")))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, view(m))
}

func (h *MachineCtrl) Badge(c echo.Context) error {
	b, err := h.s.Badge(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
