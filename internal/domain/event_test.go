package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

func TestVolunteerDate(t *testing.T) {
	spring, err := VolunteerDate(2021, SeasonSpring)
	if err != nil {
		t.Fatalf("VolunteerDate: %v", err)
	}
	if !spring.Equal(time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected spring date: %v", spring)
	}

	fall, err := VolunteerDate(2021, SeasonFall)
	if err != nil {
		t.Fatalf("VolunteerDate: %v", err)
	}
	if !fall.Equal(time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected fall date: %v", fall)
	}

	if _, err := VolunteerDate(2021, "Winter"); !errors.Is(err, constants.ErrBadSeason) {
		t.Errorf("expected ErrBadSeason, got %v", err)
	}
}
