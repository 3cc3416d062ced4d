package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/entities"
	"agro/pkg/dashboard"
	"agro/pkg/notice"
	"agro/pkg/practices"
	"agro/pkg/report"
	"agro/pkg/respond"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct {
	s     *dashboard.Service
	board *notice.Board
	guide []practices.Category
}

func New(s *dashboard.Service, board *notice.Board, guide []practices.Category) *DashboardCtrl {
	return &DashboardCtrl{s: s, board: board, guide: guide}
}

func (h *DashboardCtrl) Summary(c echo.Context) error {
	sum, err := h.s.Summary()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *DashboardCtrl) Practices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.guide)
}

// Notice returns the current action notice, or 204 once it has expired.
func (h *DashboardCtrl) Notice(c echo.Context) error {
	n, ok := h.board.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *DashboardCtrl) Export(c echo.Context) error {
	snap, err := h.s.Snapshot()
	if err != nil {
		return respond.Error(c, err)
	}
	now := h.s.Now()
	var buf bytes.Buffer
	if err := report.Write(&buf, snap, dashboard.Compute(now, snap, h.s.Options())); err != nil {
		return respond.Error(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "agro-"+now.Format(entities.DateLayout)+".xlsx"))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
