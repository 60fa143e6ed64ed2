// Package schema describes the records exchanged with the SMS gateway.
//
// The same types are used for the XML and the JSON wire formats. Optional
// values are pointers so that an unset field is omitted from the output
// instead of being sent as a zero value.
package schema

import (
	"encoding/xml"
	"slices"
)

// Request is the envelope posted to the gateway: service credentials and an
// ordered list of messages.
type Request struct {
	XMLName        xml.Name  `xml:"request" json:"-"`
	ServiceID      int       `xml:"serviceId" json:"serviceId"`
	Username       string    `xml:"username" json:"username"`
	Password       string    `xml:"password" json:"password"`
	BatchReference *string   `xml:"batchReference,omitempty" json:"batchReference,omitempty"`
	Message        []Message `xml:"message" json:"message,omitempty"`
}

// Message is one SMS inside a Request.
type Message struct {
	Recipient       string    `xml:"recipient" json:"recipient"` // E.164 with a + prefix
	Content         string    `xml:"content" json:"content"`
	Price           *int      `xml:"price,omitempty" json:"price,omitempty"` // lowest monetary unit
	ClientReference *string   `xml:"clientReference,omitempty" json:"clientReference,omitempty"`
	Settings        *Settings `xml:"settings,omitempty" json:"settings,omitempty"`
}

// Settings holds the optional per message parameters.
type Settings struct {
	Priority                   *int                `xml:"priority,omitempty" json:"priority,omitempty"` // 1 low, 2 medium, 3 high
	Validity                   *int                `xml:"validity,omitempty" json:"validity,omitempty"`
	Differentiator             *string             `xml:"differentiator,omitempty" json:"differentiator,omitempty"`
	InvoiceNode                *string             `xml:"invoiceNode,omitempty" json:"invoiceNode,omitempty"`
	Age                        *int                `xml:"age,omitempty" json:"age,omitempty"`
	NewSession                 *bool               `xml:"newSession,omitempty" json:"newSession,omitempty"`
	SessionID                  *string             `xml:"sessionId,omitempty" json:"sessionId,omitempty"`
	AutoDetectEncoding         *bool               `xml:"autoDetectEncoding,omitempty" json:"autoDetectEncoding,omitempty"`
	SafeRemoveNonGsmCharacters *bool               `xml:"safeRemoveNonGsmCharacters,omitempty" json:"safeRemoveNonGsmCharacters,omitempty"`
	OriginatorSettings         *OriginatorSettings `xml:"originatorSettings,omitempty" json:"originatorSettings,omitempty"`
	GasSettings                *GasSettings        `xml:"gasSettings,omitempty" json:"gasSettings,omitempty"`
	SendWindow                 *SendWindow         `xml:"sendWindow,omitempty" json:"sendWindow,omitempty"`
	Parameter                  []Parameter         `xml:"parameter,omitempty" json:"parameter,omitempty"`
}

// IsZero reports whether no optional field of s is set.
// Every field has to be listed here: a settings block is only sent when this
// returns false.
func (s *Settings) IsZero() bool {
	if s == nil {
		return true
	}
	return s.Priority == nil &&
		s.Validity == nil &&
		s.Differentiator == nil &&
		s.InvoiceNode == nil &&
		s.Age == nil &&
		s.NewSession == nil &&
		s.SessionID == nil &&
		s.AutoDetectEncoding == nil &&
		s.SafeRemoveNonGsmCharacters == nil &&
		s.OriginatorSettings == nil &&
		s.GasSettings == nil &&
		s.SendWindow == nil &&
		len(s.Parameter) == 0
}

// Parameter is a special key/value setting understood by the gateway.
type Parameter struct {
	Key   string `xml:"key" json:"key"`
	Value string `xml:"value" json:"value"`
}

// OriginatorType tells the gateway how to interpret the originator.
type OriginatorType string

const (
	OriginatorInternational OriginatorType = "INTERNATIONAL" // MSISDN, e.g. +4799999999
	OriginatorAlphanumeric  OriginatorType = "ALPHANUMERIC"  // up to 11 characters, e.g. Intelecom
	OriginatorNetwork       OriginatorType = "NETWORK"       // short code, e.g. 1960
)

// OriginatorSettings is the sender shown on the handset.
type OriginatorSettings struct {
	OriginatorType OriginatorType `xml:"originatorType" json:"originatorType"`
	Originator     string         `xml:"originator" json:"originator"`
}

// GasSettings carries goods and services (CPA) billing information.
type GasSettings struct {
	ServiceCode string  `xml:"serviceCode" json:"serviceCode"`
	Description *string `xml:"description,omitempty" json:"description,omitempty"`
}

// SendWindow limits when the gateway may deliver a message.
type SendWindow struct {
	StartDate Date       `xml:"startDate" json:"startDate"`
	StartTime *TimeOfDay `xml:"startTime,omitempty" json:"startTime,omitempty"`
	StopDate  *Date      `xml:"stopDate,omitempty" json:"stopDate,omitempty"`
	StopTime  *TimeOfDay `xml:"stopTime,omitempty" json:"stopTime,omitempty"`
}

// Clone returns a deep copy of r.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	c.BatchReference = clonePtr(r.BatchReference)
	if r.Message != nil {
		c.Message = make([]Message, len(r.Message))
		for i := range r.Message {
			c.Message[i] = r.Message[i].Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	m.Price = clonePtr(m.Price)
	m.ClientReference = clonePtr(m.ClientReference)
	m.Settings = m.Settings.Clone()
	return m
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		Priority:                   clonePtr(s.Priority),
		Validity:                   clonePtr(s.Validity),
		Differentiator:             clonePtr(s.Differentiator),
		InvoiceNode:                clonePtr(s.InvoiceNode),
		Age:                        clonePtr(s.Age),
		NewSession:                 clonePtr(s.NewSession),
		SessionID:                  clonePtr(s.SessionID),
		AutoDetectEncoding:         clonePtr(s.AutoDetectEncoding),
		SafeRemoveNonGsmCharacters: clonePtr(s.SafeRemoveNonGsmCharacters),
		OriginatorSettings:         clonePtr(s.OriginatorSettings),
		GasSettings:                s.GasSettings.Clone(),
		SendWindow:                 s.SendWindow.Clone(),
		Parameter:                  slices.Clone(s.Parameter),
	}
}

// Clone returns a deep copy of g.
func (g *GasSettings) Clone() *GasSettings {
	if g == nil {
		return nil
	}
	return &GasSettings{
		ServiceCode: g.ServiceCode,
		Description: clonePtr(g.Description),
	}
}

// Clone returns a deep copy of w.
func (w *SendWindow) Clone() *SendWindow {
	if w == nil {
		return nil
	}
	return &SendWindow{
		StartDate: w.StartDate,
		StartTime: clonePtr(w.StartTime),
		StopDate:  clonePtr(w.StopDate),
		StopTime:  clonePtr(w.StopTime),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
