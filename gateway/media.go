package gateway

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"mime"
)

// MediaType is the wire format of request and response bodies.
type MediaType string

// Supported media types.
const (
	MediaTypeXML  MediaType = "application/xml"
	MediaTypeJSON MediaType = "application/json"
)

// codec serializes request and response records for one media type.
type codec interface {
	Marshal(v any) ([]byte, error)
	Decode(r io.Reader, v any) error
}

type xmlCodec struct{}

func (xmlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (xmlCodec) Decode(r io.Reader, v any) error { return xml.NewDecoder(r).Decode(v) }

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Decode(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) }

// codecFor returns the codec of a supported media type.
func codecFor(mt MediaType) (codec, bool) {
	switch mt {
	case MediaTypeXML:
		return xmlCodec{}, true
	case MediaTypeJSON:
		return jsonCodec{}, true
	}
	return nil, false
}

// responseCodec picks the decoder from the response Content-Type and falls
// back to the requested media type when the header is missing or unknown.
func responseCodec(contentType string, requested codec) codec {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return requested
	}
	switch {
	case mt == string(MediaTypeJSON) || mt == "text/json":
		return jsonCodec{}
	case mt == string(MediaTypeXML) || mt == "text/xml":
		return xmlCodec{}
	}
	return requested
}
