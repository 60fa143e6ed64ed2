package gateway

import (
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"net/url"
	"time"
)

// TransportConfig describes the HTTP client built by the Builder when the
// caller does not supply one.
type TransportConfig struct {
	Timeout             time.Duration // whole request, 0 means none
	DialTimeout         time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MinTLSVersion       uint16
	RootCAs             *x509.CertPool
	Certificates        []tls.Certificate
	InsecureSkipVerify  bool
	Proxy               func(*http.Request) (*url.URL, error)
}

// DefaultTransportConfig returns the configuration used when none is given.
func DefaultTransportConfig() *TransportConfig {
	return &TransportConfig{
		Timeout:             30 * time.Second,
		DialTimeout:         10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MinTLSVersion:       tls.VersionTLS12,
		Proxy:               http.ProxyFromEnvironment,
	}
}

// NewHTTPClient builds an http.Client with its own transport, so closing it
// never touches connections of http.DefaultTransport.
func NewHTTPClient(config *TransportConfig) *http.Client {
	if config == nil {
		config = DefaultTransportConfig()
	}
	transport := &http.Transport{
		Proxy: config.Proxy,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion:         config.MinTLSVersion,
			RootCAs:            config.RootCAs,
			Certificates:       config.Certificates,
			InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec // opt-in for test gateways
		},
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}
}
