package gateway

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Defaults used by Builder.
const (
	DefaultTargetServer     = "https://smsgw.intele.com"
	DefaultTargetServerPath = "/gw/rs/sendMessages"
	DefaultMediaType        = MediaTypeXML
)

// transportChoice is the one source of the http.Client: either a client
// supplied by the caller or a configuration to build one from.
type transportChoice interface {
	httpClient() *http.Client
}

type clientChoice struct{ client *http.Client }

func (c clientChoice) httpClient() *http.Client { return c.client }

type configChoice struct{ config *TransportConfig }

func (c configChoice) httpClient() *http.Client { return NewHTTPClient(c.config) }

// Builder creates a Client. The first construction error is kept and
// returned by Build; later calls do not overwrite it.
type Builder struct {
	target    string
	mediaType MediaType
	transport transportChoice // nil: build from DefaultTransportConfig
	logger    *logrus.Entry
	metrics   *Metrics
	err       error
}

// NewBuilder returns a builder with nothing set.
func NewBuilder() *Builder {
	return new(Builder)
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// WithClient sets the http.Client to use. The Client takes it over and
// closes its idle connections on Close.
func (b *Builder) WithClient(client *http.Client) *Builder {
	if client == nil {
		return b.fail(ErrNilClient)
	}
	if _, ok := b.transport.(configChoice); ok {
		return b.fail(ErrTransportConflict)
	}
	b.transport = clientChoice{client: client}
	return b
}

// WithConfiguration sets the configuration of the http.Client to create.
func (b *Builder) WithConfiguration(config *TransportConfig) *Builder {
	if config == nil {
		return b.fail(ErrNilConfiguration)
	}
	if _, ok := b.transport.(clientChoice); ok {
		return b.fail(ErrTransportConflict)
	}
	b.transport = configChoice{config: config}
	return b
}

// WithTargetServer overrides the default server. One trailing slash is
// removed before the gateway path is appended.
func (b *Builder) WithTargetServer(server string) *Builder {
	if server == "" {
		return b.fail(ErrEmptyTarget)
	}
	b.target = strings.TrimSuffix(server, "/") + DefaultTargetServerPath
	return b
}

// WithMediaType overrides the default media type. It is not checked until
// the first Send.
func (b *Builder) WithMediaType(mediaType MediaType) *Builder {
	b.mediaType = mediaType
	return b
}

// WithLogger sets the log output of the client.
func (b *Builder) WithLogger(logger *logrus.Entry) *Builder {
	b.logger = logger
	return b
}

// WithMetrics makes the client record its calls.
func (b *Builder) WithMetrics(metrics *Metrics) *Builder {
	b.metrics = metrics
	return b
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error { return b.err }

// Build creates the Client, filling in defaults for everything not set.
func (b *Builder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}
	transport := b.transport
	if transport == nil {
		transport = configChoice{config: DefaultTransportConfig()}
	}
	target := b.target
	if target == "" {
		target = DefaultTargetServer + DefaultTargetServerPath
	}
	mediaType := b.mediaType
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	logger := b.logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		httpClient: transport.httpClient(),
		target:     target,
		mediaType:  mediaType,
		logger:     logger.WithField("gateway", target),
		metrics:    b.metrics,
	}, nil
}
