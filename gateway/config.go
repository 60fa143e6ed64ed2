package gateway

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ahaeber/smsgw/request"
)

// Config is the yaml description of a gateway account.
type Config struct {
	Target    string        `yaml:"target,omitempty"`    // server, without the gateway path
	MediaType MediaType     `yaml:"mediaType,omitempty"` // application/xml by default
	ServiceID int           `yaml:"serviceId"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Transport *Transport    `yaml:"transport,omitempty"`
	Logger    *logrus.Entry `yaml:"-"`
}

// Transport is the yaml form of TransportConfig.
type Transport struct {
	Timeout            string `yaml:"timeout,omitempty"`
	IdleConnTimeout    string `yaml:"idleConnTimeout,omitempty"`
	MaxIdleConns       int    `yaml:"maxIdleConns,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify,omitempty"`
}

// ParseConfig parses a yaml configuration.
func ParseConfig(data []byte) (*Config, error) {
	config := new(Config)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig loads and parses a yaml configuration file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ApplyEnv overrides the configuration with SMSGW_* environment variables
// so credentials do not have to live in the file.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SMSGW_TARGET"); v != "" {
		c.Target = v
	}
	if v := os.Getenv("SMSGW_MEDIA_TYPE"); v != "" {
		c.MediaType = MediaType(v)
	}
	if v := os.Getenv("SMSGW_SERVICE_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMSGW_SERVICE_ID: %w", err)
		}
		c.ServiceID = id
	}
	if v := os.Getenv("SMSGW_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("SMSGW_PASSWORD"); v != "" {
		c.Password = v
	}
	return nil
}

// TransportConfig converts the yaml transport section. It returns nil when
// the section is missing.
func (c *Config) TransportConfig() (*TransportConfig, error) {
	if c.Transport == nil {
		return nil, nil
	}
	config := DefaultTransportConfig()
	if c.Transport.Timeout != "" {
		d, err := time.ParseDuration(c.Transport.Timeout)
		if err != nil {
			return nil, fmt.Errorf("transport timeout: %w", err)
		}
		config.Timeout = d
	}
	if c.Transport.IdleConnTimeout != "" {
		d, err := time.ParseDuration(c.Transport.IdleConnTimeout)
		if err != nil {
			return nil, fmt.Errorf("transport idleConnTimeout: %w", err)
		}
		config.IdleConnTimeout = d
	}
	if c.Transport.MaxIdleConns > 0 {
		config.MaxIdleConns = c.Transport.MaxIdleConns
		config.MaxIdleConnsPerHost = c.Transport.MaxIdleConns
	}
	config.InsecureSkipVerify = c.Transport.InsecureSkipVerify
	return config, nil
}

// Builder returns a client builder populated from the configuration.
func (c *Config) Builder() (*Builder, error) {
	b := NewBuilder().WithMediaType(c.MediaType).WithLogger(c.Logger)
	if c.Target != "" {
		b.WithTargetServer(c.Target)
	}
	transport, err := c.TransportConfig()
	if err != nil {
		return nil, err
	}
	if transport != nil {
		b.WithConfiguration(transport)
	}
	return b, b.Err()
}

// NewClient builds a client from the configuration.
func (c *Config) NewClient() (*Client, error) {
	b, err := c.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// NewRequest starts an envelope with the configured service and credentials.
func (c *Config) NewRequest() *request.GatewayRequestBuilder {
	return request.NewGatewayRequest(c.ServiceID, c.Username, c.Password)
}
