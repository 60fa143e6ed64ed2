package request

import (
	"errors"
	"testing"
)

func TestGasSettings(t *testing.T) {
	gas, err := NewGasSettings("serviceCode").Build()
	if err != nil {
		t.Fatal(err)
	}
	g := gas.GasSettings()
	if g.ServiceCode != "serviceCode" {
		t.Errorf("service code: %q", g.ServiceCode)
	}
	if g.Description != nil {
		t.Error("description should be absent")
	}

	gas, err = NewGasSettings("serviceCode").WithDescription("description").Build()
	if err != nil {
		t.Fatal(err)
	}
	if d := gas.GasSettings().Description; d == nil || *d != "description" {
		t.Errorf("description: %v", d)
	}
}

func TestGasSettingsCopy(t *testing.T) {
	gas, err := NewGasSettings("code").WithDescription("d").Build()
	if err != nil {
		t.Fatal(err)
	}
	*gas.GasSettings().Description = "changed"
	if *gas.GasSettings().Description != "d" {
		t.Error("GasSettings must return a copy")
	}
}

func TestGasSettingsServiceCodeRequired(t *testing.T) {
	if _, err := NewGasSettings("").Build(); !errors.Is(err, ErrEmptyServiceCode) {
		t.Errorf("expected ErrEmptyServiceCode, got %v", err)
	}
}
