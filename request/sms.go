// Package request builds the envelopes sent to the SMS gateway.
//
//	gw, err := request.NewGatewayRequest(100, "username", "password").Build()
//	sms, err := request.NewSms("+4741000000", "test message").
//		WithPrice(0).
//		WithOriginatorSettings(schema.OriginatorAlphanumeric, "test").
//		Build()
//	gw.AddMessage(sms)
package request

import (
	"slices"

	"github.com/ahaeber/smsgw/schema"
)

// Sms is one immutable message ready to be added to a GatewayRequest.
type Sms struct {
	message schema.Message
}

// SmsBuilder collects the fields of one message. Optional settings are
// accumulated separately and only attached to the message when at least one
// of them was set.
type SmsBuilder struct {
	message  schema.Message
	settings schema.Settings
}

// NewSms starts a message.
//
// The recipient is the MSISDN in ITU-T E.164 format with a + prefix, e.g.
// +4792000001. It is not validated here, the gateway does that. The content
// is the message payload, typically the text.
func NewSms(recipient, content string) *SmsBuilder {
	return &SmsBuilder{message: schema.Message{
		Recipient: recipient,
		Content:   content,
	}}
}

// WithPrice sets the cost for the recipient in the lowest monetary unit,
// e.g. 200 for 2 NOK.
func (b *SmsBuilder) WithPrice(price int) *SmsBuilder {
	b.message.Price = &price
	return b
}

// WithClientReference sets a reference returned in the message status.
func (b *SmsBuilder) WithClientReference(ref string) *SmsBuilder {
	b.message.ClientReference = &ref
	return b
}

// WithPriority prioritizes between messages of the same service:
// 1 low, 2 medium, 3 high. The service value is used when unset.
func (b *SmsBuilder) WithPriority(priority int) *SmsBuilder {
	b.settings.Priority = &priority
	return b
}

// WithValidity sets how long the gateway keeps trying to deliver the message.
func (b *SmsBuilder) WithValidity(validity int) *SmsBuilder {
	b.settings.Validity = &validity
	return b
}

// WithDifferentiator groups messages in statistic reports.
func (b *SmsBuilder) WithDifferentiator(differentiator string) *SmsBuilder {
	b.settings.Differentiator = &differentiator
	return b
}

// WithAge sets the content age limit of CPA/GAS messages. Subscription
// services must use 18.
func (b *SmsBuilder) WithAge(age int) *SmsBuilder {
	b.settings.Age = &age
	return b
}

// WithNewSession starts a new session.
func (b *SmsBuilder) WithNewSession(newSession bool) *SmsBuilder {
	b.settings.NewSession = &newSession
	return b
}

// WithSessionID continues an existing session.
func (b *SmsBuilder) WithSessionID(sessionID string) *SmsBuilder {
	b.settings.SessionID = &sessionID
	return b
}

// WithInvoiceNode groups messages on the service invoice.
func (b *SmsBuilder) WithInvoiceNode(invoiceNode string) *SmsBuilder {
	b.settings.InvoiceNode = &invoiceNode
	return b
}

// WithAutoDetectEncoding is accepted by the gateway but currently unused.
func (b *SmsBuilder) WithAutoDetectEncoding(autoDetect bool) *SmsBuilder {
	b.settings.AutoDetectEncoding = &autoDetect
	return b
}

// WithSafeRemoveNonGsmCharacters lets the gateway remove or substitute
// characters outside the GSM alphabet instead of rejecting the message.
func (b *SmsBuilder) WithSafeRemoveNonGsmCharacters(safeRemove bool) *SmsBuilder {
	b.settings.SafeRemoveNonGsmCharacters = &safeRemove
	return b
}

// WithParameter appends a special parameter. Parameters keep their order.
func (b *SmsBuilder) WithParameter(key, value string) *SmsBuilder {
	b.settings.Parameter = append(b.settings.Parameter, schema.Parameter{Key: key, Value: value})
	return b
}

// WithOriginatorSettings sets the sender shown on the handset, e.g.
// "+4799999999", "Intelecom" or "1960" depending on the type.
func (b *SmsBuilder) WithOriginatorSettings(originatorType schema.OriginatorType, originator string) *SmsBuilder {
	b.settings.OriginatorSettings = &schema.OriginatorSettings{
		OriginatorType: originatorType,
		Originator:     originator,
	}
	return b
}

// WithGasSettings sets goods and services billing values.
func (b *SmsBuilder) WithGasSettings(gas GasSettings) *SmsBuilder {
	b.settings.GasSettings = gas.GasSettings()
	return b
}

// WithSendWindow restricts when the message may be delivered.
func (b *SmsBuilder) WithSendWindow(window SendWindow) *SmsBuilder {
	b.settings.SendWindow = window.SendWindow()
	return b
}

// Build returns the message. The settings block is attached only when any
// optional setting was given.
func (b *SmsBuilder) Build() (Sms, error) {
	switch {
	case b.message.Recipient == "":
		return Sms{}, ErrEmptyRecipient
	case b.message.Content == "":
		return Sms{}, ErrEmptyContent
	}
	msg := b.message.Clone()
	if !b.settings.IsZero() {
		msg.Settings = b.settings.Clone()
	}
	return Sms{message: msg}, nil
}

// Message returns a copy of the wire record.
func (s Sms) Message() schema.Message {
	return s.message.Clone()
}

// Parameters returns the special parameters of the message in order.
func (s Sms) Parameters() []schema.Parameter {
	if s.message.Settings == nil {
		return nil
	}
	return slices.Clone(s.message.Settings.Parameter)
}
