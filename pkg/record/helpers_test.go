package record

import (
	"testing"
	"time"

	"agro/entities"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
