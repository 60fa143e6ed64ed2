package request

import "github.com/ahaeber/smsgw/schema"

// GatewayRequest wraps the envelope sent in one gateway call. Unlike Sms it
// stays mutable after Build so messages can be added to it. It is not safe
// for concurrent use.
type GatewayRequest struct {
	request schema.Request
}

// GatewayRequestBuilder collects the service identifier and credentials.
type GatewayRequestBuilder struct {
	serviceID      int
	username       string
	password       string
	batchReference *string
}

// NewGatewayRequest starts an envelope for a service.
func NewGatewayRequest(serviceID int, username, password string) *GatewayRequestBuilder {
	return &GatewayRequestBuilder{
		serviceID: serviceID,
		username:  username,
		password:  password,
	}
}

// WithBatchReference sets a reference echoed back in the response.
func (b *GatewayRequestBuilder) WithBatchReference(ref string) *GatewayRequestBuilder {
	b.batchReference = &ref
	return b
}

// Build returns an envelope without messages.
func (b *GatewayRequestBuilder) Build() (*GatewayRequest, error) {
	switch {
	case b.username == "":
		return nil, ErrEmptyUsername
	case b.password == "":
		return nil, ErrEmptyPassword
	}
	return &GatewayRequest{request: schema.Request{
		ServiceID:      b.serviceID,
		Username:       b.username,
		Password:       b.password,
		BatchReference: clonePtr(b.batchReference),
	}}, nil
}

// AddMessage appends a message. The order of the messages is the order of
// the statuses in the response.
func (g *GatewayRequest) AddMessage(sms Sms) {
	g.request.Message = append(g.request.Message, sms.Message())
}

// Len returns the number of messages added.
func (g *GatewayRequest) Len() int {
	return len(g.request.Message)
}

// Request returns the wrapped envelope.
func (g *GatewayRequest) Request() *schema.Request {
	return &g.request
}
