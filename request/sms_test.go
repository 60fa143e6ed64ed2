package request

import (
	"errors"
	"testing"
	"time"

	"github.com/kr/pretty"

	"github.com/ahaeber/smsgw/schema"
)

func TestSmsRequiredOnly(t *testing.T) {
	sms, err := NewSms("recipient", "content").Build()
	if err != nil {
		t.Fatal(err)
	}
	msg := sms.Message()
	if msg.Recipient != "recipient" || msg.Content != "content" {
		t.Errorf("unexpected message: %# v", pretty.Formatter(msg))
	}
	if msg.ClientReference != nil {
		t.Error("client reference should be absent")
	}
	if msg.Price != nil {
		t.Error("price should be absent")
	}
	if msg.Settings != nil {
		t.Error("settings should be absent")
	}
}

func TestSmsWithZeroPrice(t *testing.T) {
	sms, err := NewSms("+4741000000", "test").WithPrice(0).Build()
	if err != nil {
		t.Fatal(err)
	}
	price := 0
	want := schema.Message{Recipient: "+4741000000", Content: "test", Price: &price}
	if diff := pretty.Diff(sms.Message(), want); len(diff) > 0 {
		t.Errorf("message differs: %v", diff)
	}
}

func TestSmsAllOptional(t *testing.T) {
	gas, err := NewGasSettings("serviceCode").Build()
	if err != nil {
		t.Fatal(err)
	}
	window, err := NewSendWindow(time.Date(2015, 8, 6, 12, 0, 0, 0, time.UTC)).Build()
	if err != nil {
		t.Fatal(err)
	}
	sms, err := NewSms("recipient", "content").
		WithAge(15).
		WithClientReference("clientReference").
		WithDifferentiator("differentiator").
		WithGasSettings(gas).
		WithInvoiceNode("invoiceNode").
		WithNewSession(true).
		WithOriginatorSettings(schema.OriginatorAlphanumeric, "alphanumeric").
		WithParameter("key1", "value1").
		WithParameter("key2", "value2").
		WithPrice(5000).
		WithPriority(5).
		WithAutoDetectEncoding(false).
		WithSafeRemoveNonGsmCharacters(true).
		WithSendWindow(window).
		WithSessionID("sessionId").
		WithValidity(171).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	age, price, priority, validity := 15, 5000, 5, 171
	ref, diff, node, session := "clientReference", "differentiator", "invoiceNode", "sessionId"
	yes, no := true, false
	want := schema.Message{
		Recipient:       "recipient",
		Content:         "content",
		Price:           &price,
		ClientReference: &ref,
		Settings: &schema.Settings{
			Priority:                   &priority,
			Validity:                   &validity,
			Differentiator:             &diff,
			InvoiceNode:                &node,
			Age:                        &age,
			NewSession:                 &yes,
			SessionID:                  &session,
			AutoDetectEncoding:         &no,
			SafeRemoveNonGsmCharacters: &yes,
			OriginatorSettings: &schema.OriginatorSettings{
				OriginatorType: schema.OriginatorAlphanumeric,
				Originator:     "alphanumeric",
			},
			GasSettings: gas.GasSettings(),
			SendWindow:  window.SendWindow(),
			Parameter: []schema.Parameter{
				{Key: "key1", Value: "value1"},
				{Key: "key2", Value: "value2"},
			},
		},
	}
	if d := pretty.Diff(sms.Message(), want); len(d) > 0 {
		t.Errorf("message differs: %v", d)
	}
	if params := sms.Parameters(); len(params) != 2 || params[0].Key != "key1" {
		t.Errorf("parameters out of order: %v", params)
	}
}

func TestSmsSettingsPresence(t *testing.T) {
	gas, _ := NewGasSettings("code").Build()
	window, _ := NewSendWindow(time.Now()).Build()
	options := map[string]func(*SmsBuilder){
		"priority":       func(b *SmsBuilder) { b.WithPriority(1) },
		"validity":       func(b *SmsBuilder) { b.WithValidity(173) },
		"differentiator": func(b *SmsBuilder) { b.WithDifferentiator("pincode_messages") },
		"age":            func(b *SmsBuilder) { b.WithAge(18) },
		"newSession":     func(b *SmsBuilder) { b.WithNewSession(false) },
		"sessionId":      func(b *SmsBuilder) { b.WithSessionID("s") },
		"invoiceNode":    func(b *SmsBuilder) { b.WithInvoiceNode("n") },
		"autoDetect":     func(b *SmsBuilder) { b.WithAutoDetectEncoding(false) },
		"safeRemove":     func(b *SmsBuilder) { b.WithSafeRemoveNonGsmCharacters(false) },
		"parameter":      func(b *SmsBuilder) { b.WithParameter("k", "v") },
		"originator":     func(b *SmsBuilder) { b.WithOriginatorSettings(schema.OriginatorNetwork, "1960") },
		"gasSettings":    func(b *SmsBuilder) { b.WithGasSettings(gas) },
		"sendWindow":     func(b *SmsBuilder) { b.WithSendWindow(window) },
	}
	for name, option := range options {
		t.Run(name, func(t *testing.T) {
			b := NewSms("+4741000000", "test")
			option(b)
			sms, err := b.Build()
			if err != nil {
				t.Fatal(err)
			}
			if sms.Message().Settings == nil {
				t.Errorf("settings dropped when only %s is set", name)
			}
		})
	}

	// price and client reference live on the message, not in settings
	sms, err := NewSms("+4741000000", "test").WithPrice(1).WithClientReference("ref").Build()
	if err != nil {
		t.Fatal(err)
	}
	if sms.Message().Settings != nil {
		t.Error("settings must stay absent for message level fields")
	}
}

func TestSmsImmutable(t *testing.T) {
	b := NewSms("+4741000000", "test").WithParameter("k1", "v1").WithPrice(1)
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	b.WithParameter("k2", "v2").WithPrice(2)
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(first.Parameters()); got != 1 {
		t.Errorf("first message changed: %d parameters", got)
	}
	if got := *first.Message().Price; got != 1 {
		t.Errorf("first message price changed to %d", got)
	}
	if got := len(second.Parameters()); got != 2 {
		t.Errorf("second message has %d parameters", got)
	}

	msg := first.Message()
	msg.Settings.Parameter[0].Value = "changed"
	if first.Parameters()[0].Value != "v1" {
		t.Error("Message must return a copy")
	}
}

func TestSmsRequiredFields(t *testing.T) {
	if _, err := NewSms("", "test").Build(); !errors.Is(err, ErrEmptyRecipient) {
		t.Errorf("expected ErrEmptyRecipient, got %v", err)
	}
	if _, err := NewSms("+4741000000", "").Build(); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}
