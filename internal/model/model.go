// Package model holds the data types shared across the registry, engine,
// ID3v2 and field-decoder packages: the public Container/Field/Value
// contract described in spec.md §3, plus the TextEncodingHint enum used
// while decoding field payloads. It lives apart from the root package so
// that internal/id3v2 and internal/fields can depend on it without either
// depending on the root package (which itself wires them together).
package model

import (
	"fmt"
	"time"
)

// Kind tags which field of Value is populated.
type Kind int

const (
	KindBytes Kind = iota
	KindText
	KindInteger
	KindDuration
	KindTimestamp
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "Bytes"
	case KindText:
		return "Text"
	case KindInteger:
		return "Integer"
	case KindDuration:
		return "Duration"
	case KindTimestamp:
		return "Timestamp"
	case KindImage:
		return "Image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Timestamp is either a single point in time, or a range when End is set.
// HasZone records whether Time is pinned to a known zone; the ID3v2
// timestamp decoder parses ISO-8601 text as UTC and always sets it.
type Timestamp struct {
	Time    time.Time
	HasZone bool
	End     *time.Time
}

// Image carries an embedded picture frame's MIME type and raw bytes.
type Image struct {
	MIME string
	Data []byte
}

// Value is the tagged union of spec.md §3: exactly one of the typed
// fields below is meaningful, selected by Kind. Go has no sum types, so
// this is the idiomatic struct-with-discriminant rendition.
type Value struct {
	Kind      Kind
	Bytes     []byte
	Text      string
	Integer   int64
	Duration  time.Duration
	Timestamp Timestamp
	Image     Image
}

func TextValue(s string) Value    { return Value{Kind: KindText, Text: s} }
func IntegerValue(n int64) Value  { return Value{Kind: KindInteger, Integer: n} }
func BytesValue(b []byte) Value   { return Value{Kind: KindBytes, Bytes: b} }
func DurationValue(d time.Duration) Value {
	return Value{Kind: KindDuration, Duration: d}
}
func TimestampValue(ts Timestamp) Value { return Value{Kind: KindTimestamp, Timestamp: ts} }
func ImageValue(mime string, data []byte) Value {
	return Value{Kind: KindImage, Image: Image{MIME: mime, Data: data}}
}

// AsText, AsInteger and AsDuration are panic-free accessors: each returns
// its zero value and ok == false if v.Kind doesn't match, so a caller
// that doesn't care about a field's declared family can still probe it
// safely.
func (v Value) AsText() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.Text, true
}

func (v Value) AsInteger() (int64, bool) {
	if v.Kind != KindInteger {
		return 0, false
	}
	return v.Integer, true
}

func (v Value) AsDuration() (time.Duration, bool) {
	if v.Kind != KindDuration {
		return 0, false
	}
	return v.Duration, true
}

// TextEncodingHint is the text-encoding indicator described in spec.md
// §4.6, resolved either from an explicit ID3v2 encoding byte or from BOM
// sniffing (spec.md §9's decodeBOM helper).
type TextEncodingHint int

const (
	EncodingUnknown TextEncodingHint = iota
	EncodingLatin1
	EncodingUTF16WithBOM
	EncodingUTF16BE
	EncodingUTF8
)

// Field is one entry inside a Container, identified on the wire by its
// four-byte SystemName. UnknownField (spec.md §3) is represented simply
// as a Field whose Values is empty and whose Data carries the raw bytes,
// with Unknown set.
type Field struct {
	Header     []byte
	Data       []byte
	SystemName [4]byte
	Length     int
	Flags      uint16
	Group      *byte

	Name     string // human-readable name, resolved via Lookup
	Subtitle string
	Values   []Value
	Warnings []string

	// Unknown is true for fields whose id was not recognized by the
	// registry, or whose payload could not be decoded; Data still holds
	// the raw, undecoded payload bytes in that case.
	Unknown bool
	Hidden  bool
}

// Container is one top-level metadata block (spec.md §3). For ID3v2,
// VersionMajor is 2, 3 or 4 and VersionMinor is the revision byte.
type Container struct {
	Format       string
	VersionMajor int
	VersionMinor int
	Length       int
	Flags        uint8
	Fields       []Field

	HasFooter    bool
	Experimental bool
	TagIsUpdate  bool
	TagCRC       *uint32
	Restrictions *byte

	Warnings []string
}
