// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import "fmt"

// Severity classifies a Message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Result is the success/failure flag of a Message.
type Result int

const (
	ResultSuccess Result = iota
	ResultFailure
)

func (r Result) String() string {
	if r == ResultSuccess {
		return "success"
	}
	return "failure"
}

// Message is an immutable status value. The only mutation path is Update,
// which exists for recycling shared sentinel instances.
type Message struct {
	severity Severity
	code     Code
	text     string
	result   Result
}

// NewMessage constructs a Message.
func NewMessage(severity Severity, code Code, text string, result Result) Message {
	return Message{severity: severity, code: code, text: text, result: result}
}

// Success is an Info message with a success result.
func Success(code Code, text string) Message {
	return NewMessage(SeverityInfo, code, text, ResultSuccess)
}

// Failure is a message with a failure result.
func Failure(severity Severity, code Code, text string) Message {
	return NewMessage(severity, code, text, ResultFailure)
}

func (m Message) Severity() Severity { return m.severity }
func (m Message) Code() Code         { return m.code }
func (m Message) Text() string       { return m.text }
func (m Message) Result() Result     { return m.result }

// OK reports whether the message carries a success result.
func (m Message) OK() bool { return m.result == ResultSuccess }

// Err returns nil for successful messages, otherwise an error wrapping the
// code's error class.
func (m Message) Err() error {
	if m.OK() {
		return nil
	}
	class := ErrorClass(m.code)
	if class == nil {
		class = ErrRequestFailed
	}
	return fmt.Errorf("%s (code %d): %w", m.text, m.code, class)
}

// Update overwrites every field in place.
func (m *Message) Update(severity Severity, code Code, text string, result Result) {
	m.severity = severity
	m.code = code
	m.text = text
	m.result = result
}

func (m Message) String() string {
	return fmt.Sprintf("[%s/%s] %d %s", m.severity, m.result, m.code, m.text)
}

// NewTimingUnavailable returns a fresh "timing unavailable" placeholder.
// Owners keep one instance and recycle it with Update.
func NewTimingUnavailable() *Message {
	m := Failure(SeverityWarning, CodeTimingUnavailable, "timing unavailable")
	return &m
}
