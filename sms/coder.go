// Package sms analyses message text the way the gateway will encode it:
// which coding a text needs, how many parts it is split into and what is
// left of it when characters outside the GSM alphabet are removed.
package sms

import (
	"bytes"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Coding is the SMPP data_coding of a text.
type Coding uint8

const (
	GSM7 Coding = 0 // GSM 03.38 default alphabet
	UCS2 Coding = 8
)

func (c Coding) String() string {
	switch c {
	case GSM7:
		return "GSM7"
	case UCS2:
		return "UCS2"
	default:
		return "unknown"
	}
}

const escape = 0x1B

var (
	// GSM 03.38 default alphabet, in septet order
	gsmAlphabet = "@£$¥èéùìòÇ\nØø\rÅå" +
		"Δ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ" +
		" !\"#¤%&'()*+,-./" +
		"0123456789:;<=>?" +
		"¡ABCDEFGHIJKLMNO" +
		"PQRSTUVWXYZÄÖÑÜ§" +
		"¿abcdefghijklmno" +
		"pqrstuvwxyzäöñüà"

	gsmBasic = make(map[rune]byte, 128)

	// extension table, sent as escape + septet
	gsmExtension = map[rune]byte{
		'\f': 0x0A,
		'^':  0x14,
		'{':  0x28,
		'}':  0x29,
		'\\': 0x2F,
		'[':  0x3C,
		'~':  0x3D,
		']':  0x3E,
		'|':  0x40,
		'€':  0x65,
	}
)

func init() {
	var i byte
	for _, r := range gsmAlphabet {
		if i != escape {
			gsmBasic[r] = i
		}
		i++
	}
}

// septets returns the number of septets r takes, or 0 when it is not in the
// GSM alphabet.
func septets(r rune) int {
	if _, ok := gsmBasic[r]; ok {
		return 1
	}
	if _, ok := gsmExtension[r]; ok {
		return 2
	}
	return 0
}

// IsGSM reports whether every character of text is in the GSM alphabet.
func IsGSM(text string) bool {
	for _, r := range text {
		if septets(r) == 0 {
			return false
		}
	}
	return true
}

// Detect returns the coding the gateway picks for text when encoding
// auto-detection is on.
func Detect(text string) Coding {
	if IsGSM(text) {
		return GSM7
	}
	return UCS2
}

// Encode encodes text with the coding. GSM7 output is unpacked, one septet
// per byte; characters outside the alphabet become '?'.
func Encode(coding Coding, text string) []byte {
	switch coding {
	case UCS2:
		enc := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM).NewEncoder()
		es, _, _ := transform.Bytes(enc, []byte(text))
		return es
	default:
		var result bytes.Buffer
		for _, r := range text {
			if b, ok := gsmBasic[r]; ok {
				result.WriteByte(b)
				continue
			}
			if b, ok := gsmExtension[r]; ok {
				result.WriteByte(escape)
				result.WriteByte(b)
				continue
			}
			result.WriteByte(gsmBasic['?'])
		}
		return result.Bytes()
	}
}

// Part sizes of single and concatenated messages.
const (
	gsmSingle  = 160
	gsmPart    = 153
	ucs2Single = 70
	ucs2Part   = 67
)

// Parts returns how many messages text is split into with its detected
// coding.
func Parts(text string) int {
	var units, single, part int
	switch Detect(text) {
	case GSM7:
		units, single, part = len(Encode(GSM7, text)), gsmSingle, gsmPart
	default:
		units, single, part = len(Encode(UCS2, text))/2, ucs2Single, ucs2Part
	}
	if units <= single {
		return 1
	}
	return (units + part - 1) / part
}

// Sanitize removes the characters a GSM7 message cannot carry. Accented
// letters outside the alphabet lose their accent instead of being removed.
func Sanitize(text string) string {
	if IsGSM(text) {
		return text
	}
	var result bytes.Buffer
	for _, r := range text {
		if septets(r) > 0 {
			result.WriteRune(r)
			continue
		}
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		stripped, _, err := transform.String(t, string(r))
		if err == nil && stripped != "" && IsGSM(stripped) {
			result.WriteString(stripped)
		}
	}
	return result.String()
}
