package request

import "github.com/ahaeber/smsgw/schema"

// GasSettings is an immutable set of goods and services (GAS) values.
type GasSettings struct {
	settings schema.GasSettings
}

// GasSettingsBuilder collects the GAS values.
type GasSettingsBuilder struct {
	serviceCode string
	description *string
}

// NewGasSettings starts GAS settings for the given service code.
func NewGasSettings(serviceCode string) *GasSettingsBuilder {
	return &GasSettingsBuilder{serviceCode: serviceCode}
}

// WithDescription sets the description shown to the payer.
func (b *GasSettingsBuilder) WithDescription(description string) *GasSettingsBuilder {
	b.description = &description
	return b
}

// Build returns the GAS settings.
func (b *GasSettingsBuilder) Build() (GasSettings, error) {
	if b.serviceCode == "" {
		return GasSettings{}, ErrEmptyServiceCode
	}
	return GasSettings{settings: schema.GasSettings{
		ServiceCode: b.serviceCode,
		Description: clonePtr(b.description),
	}}, nil
}

// GasSettings returns a copy of the wire record.
func (g GasSettings) GasSettings() *schema.GasSettings {
	return g.settings.Clone()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
