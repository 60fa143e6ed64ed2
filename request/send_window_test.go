package request

import (
	"errors"
	"testing"
	"time"

	"github.com/ahaeber/smsgw/schema"
)

func TestSendWindowRequired(t *testing.T) {
	start := time.Date(2015, 8, 6, 12, 0, 0, 0, time.FixedZone("", 2*3600))

	for name, b := range map[string]*SendWindowBuilder{
		"datetime":  NewSendWindow(start),
		"date+time": NewSendWindowAt(start, start),
	} {
		window, err := b.Build()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		w := window.SendWindow()
		if !w.StartDate.Time().Equal(start) {
			t.Errorf("%s: start date %v", name, w.StartDate)
		}
		if w.StartTime == nil || !w.StartTime.Time().Equal(start) {
			t.Errorf("%s: start time %v", name, w.StartTime)
		}
		if w.StopDate != nil || w.StopTime != nil {
			t.Errorf("%s: stop should be absent", name)
		}
	}
}

func TestSendWindowStop(t *testing.T) {
	start := time.Now()
	stop := start.Add(72 * time.Hour)

	combined, err := NewSendWindow(start).WithStopDateTime(stop).Build()
	if err != nil {
		t.Fatal(err)
	}
	separate, err := NewSendWindowAt(start, start).WithStopDate(stop).WithStopTime(stop).Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []*schema.SendWindow{combined.SendWindow(), separate.SendWindow()} {
		if w.StopDate == nil || !w.StopDate.Time().Equal(stop) {
			t.Errorf("stop date %v", w.StopDate)
		}
		if w.StopTime == nil || !w.StopTime.Time().Equal(stop) {
			t.Errorf("stop time %v", w.StopTime)
		}
	}

	onlyDate, err := NewSendWindow(start).WithStopDate(stop).Build()
	if err != nil {
		t.Fatal(err)
	}
	if w := onlyDate.SendWindow(); w.StopDate == nil || w.StopTime != nil {
		t.Errorf("only the stop date should be set: %+v", w)
	}
}

func TestSendWindowZeroStart(t *testing.T) {
	if _, err := NewSendWindow(time.Time{}).Build(); !errors.Is(err, ErrZeroStart) {
		t.Errorf("expected ErrZeroStart, got %v", err)
	}
}
