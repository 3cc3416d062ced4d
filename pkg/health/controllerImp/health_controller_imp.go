package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/proximity"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	now proximity.Clock
}

func NewHealthCtrl(db *gorm.DB, now proximity.Clock) *HealthCtrl {
	return &HealthCtrl{db: db, now: now}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the record store and counts each collection. The farm date
// is the day used by every proximity rule.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	store := check{OK: true}
	records := map[string]int64{}
	if h.db == nil {
		store = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		store = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		store = check{Err: "ping: " + err.Error()}
	} else {
		models := map[string]any{
			"machines":       &entities.Machine{},
			"tasks":          &entities.Task{},
			"fertilizations": &entities.FertilizationRecord{},
			"fields":         &entities.Field{},
		}
		for name, m := range models {
			var n int64
			if err := h.db.WithContext(ctx).Model(m).Count(&n).Error; err != nil {
				store = check{Err: name + ": " + err.Error()}
				break
			}
			records[name] = n
		}
	}

	code := http.StatusOK
	if !store.OK {
		code = http.StatusServiceUnavailable
	}
	now := h.now()
	return c.JSON(code, map[string]any{
		"status":     map[string]any{"ok": store.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]any{"database": store},
		"records":    records,
		"farm_date":  now.Format(entities.DateLayout),
		"timezone":   now.Location().String(),
		"time":       time.Now().Format(time.RFC3339),
	})
}
