// Package errormanager records per-cell expression and formatting
// errors without aborting the stream they occurred in, per the
// engine's error-handling design: a failed cell is replaced with a
// configured placeholder rather than failing the whole render.
package errormanager

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gridform/termfmt/pipeline"
)

// Policy controls how a recorded error is surfaced in the rendered
// output.
type Policy struct {
	// DisplayErrorStrings substitutes a configured error string into the
	// offending cell instead of leaving it blank.
	DisplayErrorStrings bool
	// ShowErrorsAsMessages additionally logs the error through the
	// underlying logger.
	ShowErrorsAsMessages bool
	ExpressionErrorString string
	FormatErrorString     string
}

// Manager records expression-evaluation and value-formatting errors
// encountered while rendering one object stream. Every instance is
// tagged with a session ID so errors from concurrent renders (separate
// Manager instances, never shared) can be correlated in logs.
type Manager struct {
	log     *logrus.Logger
	style   pipeline.StyleConfig
	policy  Policy
	session uuid.UUID
}

// New creates a Manager bound to one render session.
func New(log *logrus.Logger, style pipeline.StyleConfig, policy Policy) *Manager {
	return &Manager{
		log:     log,
		style:   style,
		policy:  policy,
		session: uuid.New(),
	}
}

// RecordExpressionError records that expr failed to evaluate with err,
// and returns the text the engine should substitute for the cell
// (possibly empty, per policy).
func (m *Manager) RecordExpressionError(expr string, err error) string {
	m.logError("expression evaluation failed", expr, err)
	if !m.policy.DisplayErrorStrings {
		return ""
	}
	if m.policy.ExpressionErrorString != "" {
		return m.policy.ExpressionErrorString
	}
	return m.style.ErrorAccent() + err.Error() + "\x1b[0m"
}

// RecordFormatError records that a value was obtained but its string
// rendering failed, and returns the substitution text.
func (m *Manager) RecordFormatError(value any, err error) string {
	m.logError("value formatting failed", value, err)
	if !m.policy.DisplayErrorStrings {
		return ""
	}
	if m.policy.FormatErrorString != "" {
		return m.policy.FormatErrorString
	}
	return m.style.ErrorAccent() + err.Error() + "\x1b[0m"
}

func (m *Manager) logError(msg string, subject any, err error) {
	if m.log == nil || !m.policy.ShowErrorsAsMessages {
		return
	}
	m.log.WithFields(logrus.Fields{
		"session": m.session.String(),
		"subject": subject,
	}).WithError(err).Warn(msg)
}
