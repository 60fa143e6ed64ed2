// Package gateway sends requests to the SMS gateway.
//
// A Client is built once with a Builder and reused; creating the underlying
// http.Client is comparatively expensive. Close releases its connections.
//
//	client, err := gateway.NewBuilder().WithMediaType(gateway.MediaTypeJSON).Build()
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	response, err := client.Send(gw)
//
// There is no retry: every error is returned to the caller as it happened.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ahaeber/smsgw/request"
	"github.com/ahaeber/smsgw/schema"
)

// UserAgent string.
var UserAgent = "smsgw-go/1.0"

// maxErrorBody limits how much of a non-2xx body is kept in a StatusError.
const maxErrorBody = 4 << 10

// ErrNilRequest is returned when Send is called without a request.
var ErrNilRequest = errors.New("gateway: request is nil")

// Client posts requests to one gateway endpoint. It is safe for concurrent
// use as long as the http.Client it wraps is.
type Client struct {
	httpClient *http.Client
	target     string
	mediaType  MediaType
	logger     *logrus.Entry
	metrics    *Metrics
	closed     atomic.Bool
}

// Target returns the full URL the client posts to.
func (c *Client) Target() string { return c.target }

// MediaType returns the configured wire format.
func (c *Client) MediaType() MediaType { return c.mediaType }

// Send posts the envelope of gw and returns the gateway response.
func (c *Client) Send(gw *request.GatewayRequest) (*schema.Response, error) {
	return c.SendContext(context.Background(), gw)
}

// SendContext is Send with a context controlling the HTTP call.
func (c *Client) SendContext(ctx context.Context, gw *request.GatewayRequest) (*schema.Response, error) {
	if gw == nil {
		return nil, ErrNilRequest
	}
	return c.SendRequestContext(ctx, gw.Request())
}

// SendRequest posts an envelope and returns the gateway response.
func (c *Client) SendRequest(req *schema.Request) (*schema.Response, error) {
	return c.SendRequestContext(context.Background(), req)
}

// SendRequestContext is SendRequest with a context controlling the HTTP call.
func (c *Client) SendRequestContext(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if c.closed.Load() {
		return nil, ErrClosed
	}
	// the media type is only checked here, a bad one does not fail Build
	cd, ok := codecFor(c.mediaType)
	if !ok {
		c.metrics.observe(c.mediaType, outcomeUnsupported, 0, 0)
		return nil, &UnsupportedMediaTypeError{MediaType: c.mediaType}
	}
	data, err := cd.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.target, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if UserAgent != "" {
		httpReq.Header.Set("User-Agent", UserAgent)
	}
	httpReq.Header.Set("Content-Type", string(c.mediaType))
	httpReq.Header.Set("Accept", string(c.mediaType))

	logEntry := c.logger.WithFields(logrus.Fields{
		"mediaType": c.mediaType,
		"serviceId": req.ServiceID,
		"messages":  len(req.Message),
	})
	logEntry.Debug("Sending to gateway")
	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(c.mediaType, outcomeTransport, len(req.Message), time.Since(started))
		logEntry.WithError(err).Error("Gateway request error")
		return nil, err
	}
	defer resp.Body.Close()
	logEntry = logEntry.WithField("status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.metrics.observe(c.mediaType, outcomeStatus, len(req.Message), time.Since(started))
		logEntry.Warning("Gateway rejected request")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}
	response := new(schema.Response)
	if err = responseCodec(resp.Header.Get("Content-Type"), cd).Decode(resp.Body, response); err != nil {
		c.metrics.observe(c.mediaType, outcomeDecode, len(req.Message), time.Since(started))
		logEntry.WithError(err).Error("Gateway response decoding error")
		return nil, err
	}
	c.metrics.observe(c.mediaType, outcomeSent, len(req.Message), time.Since(started))
	logEntry.WithField("failed", len(response.Failed())).Debug("Gateway response")
	return response, nil
}

// Close releases the connections held by the client. Calling it again is a
// no-op; Send after Close returns ErrClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.logger.Debug("Close")
	c.httpClient.CloseIdleConnections()
	return nil
}
