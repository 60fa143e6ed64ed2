package schema

import "encoding/xml"

// StatusOK is the statusCode of a message accepted by the gateway.
const StatusOK = 1

// Response is the gateway answer to a Request.
type Response struct {
	XMLName        xml.Name        `xml:"response" json:"-"`
	BatchReference string          `xml:"batchReference,omitempty" json:"batchReference,omitempty"`
	MessageStatus  []MessageStatus `xml:"messageStatus" json:"messageStatus"`
}

// MessageStatus is the acknowledgment for one message of the request.
// SequenceIndex is the 1-based position of the message in the request.
type MessageStatus struct {
	StatusCode      int    `xml:"statusCode" json:"statusCode"`
	StatusMessage   string `xml:"statusMessage,omitempty" json:"statusMessage,omitempty"`
	ClientReference string `xml:"clientReference,omitempty" json:"clientReference,omitempty"`
	Recipient       string `xml:"recipient,omitempty" json:"recipient,omitempty"`
	MessageID       string `xml:"messageId,omitempty" json:"messageId,omitempty"`
	SessionID       string `xml:"sessionId,omitempty" json:"sessionId,omitempty"`
	SequenceIndex   int    `xml:"sequenceIndex,omitempty" json:"sequenceIndex,omitempty"`
}

// OK reports whether the gateway accepted the message.
func (s MessageStatus) OK() bool { return s.StatusCode == StatusOK }

// Failed returns the statuses of the messages that were not accepted.
func (r *Response) Failed() []MessageStatus {
	var failed []MessageStatus
	for _, s := range r.MessageStatus {
		if !s.OK() {
			failed = append(failed, s)
		}
	}
	return failed
}
