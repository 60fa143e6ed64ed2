package request

import (
	"time"

	"github.com/ahaeber/smsgw/schema"
)

// SendWindow is an immutable delivery window for a message.
//
//	window, err := request.NewSendWindow(start).WithStopDate(stop).Build()
type SendWindow struct {
	window schema.SendWindow
}

// SendWindowBuilder collects the bounds of a send window.
type SendWindowBuilder struct {
	startDate time.Time
	startTime time.Time
	stopDate  *time.Time
	stopTime  *time.Time
}

// NewSendWindow starts a window at the given moment; it is used both as the
// start date and the start time.
func NewSendWindow(start time.Time) *SendWindowBuilder {
	return &SendWindowBuilder{startDate: start, startTime: start}
}

// NewSendWindowAt starts a window from a separate date and time.
func NewSendWindowAt(startDate, startTime time.Time) *SendWindowBuilder {
	return &SendWindowBuilder{startDate: startDate, startTime: startTime}
}

// WithStopDate sets the last date the message may be sent.
func (b *SendWindowBuilder) WithStopDate(stopDate time.Time) *SendWindowBuilder {
	b.stopDate = &stopDate
	return b
}

// WithStopTime sets the time of day after which the message is not sent.
func (b *SendWindowBuilder) WithStopTime(stopTime time.Time) *SendWindowBuilder {
	b.stopTime = &stopTime
	return b
}

// WithStopDateTime sets both the stop date and the stop time.
func (b *SendWindowBuilder) WithStopDateTime(stop time.Time) *SendWindowBuilder {
	b.stopDate = &stop
	b.stopTime = &stop
	return b
}

// Build returns the send window. The start date is mandatory.
func (b *SendWindowBuilder) Build() (SendWindow, error) {
	if b.startDate.IsZero() {
		return SendWindow{}, ErrZeroStart
	}
	w := schema.SendWindow{StartDate: schema.Date(b.startDate)}
	if !b.startTime.IsZero() {
		t := schema.TimeOfDay(b.startTime)
		w.StartTime = &t
	}
	if b.stopDate != nil {
		d := schema.Date(*b.stopDate)
		w.StopDate = &d
	}
	if b.stopTime != nil {
		t := schema.TimeOfDay(*b.stopTime)
		w.StopTime = &t
	}
	return SendWindow{window: w}, nil
}

// SendWindow returns a copy of the wire record.
func (w SendWindow) SendWindow() *schema.SendWindow {
	return w.window.Clone()
}
