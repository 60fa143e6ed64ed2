package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Construction errors returned by Builder.Build.
var (
	ErrEmptyTarget       = errors.New("gateway: target server must not be empty")
	ErrTransportConflict = errors.New("gateway: http client and transport configuration are mutually exclusive; configure the provided client directly")
	ErrNilClient         = errors.New("gateway: http client is nil")
	ErrNilConfiguration  = errors.New("gateway: transport configuration is nil")
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("gateway: client is closed")

// UnsupportedMediaTypeError is returned by Send when the client was built
// with a media type other than XML or JSON.
type UnsupportedMediaTypeError struct {
	MediaType MediaType
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("gateway: media type %q is not supported", string(e.MediaType))
}

// StatusError is returned when the gateway answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gateway: [%d] %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("gateway: [%d] %s", e.StatusCode, e.Body)
}
