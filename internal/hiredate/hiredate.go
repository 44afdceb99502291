// Package hiredate converts the external hire timestamp format
// (YYYY-MM-DDTHH:MM:SSZ) into the canonical stored form (YYYY-MM-DD HH:MM:SS).
package hiredate

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ExternalLayout  = "2006-01-02T15:04:05Z"
	CanonicalLayout = "2006-01-02 15:04:05"
)

// time.Parse accepts single-digit hours; the shape check keeps the format strict.
var externalShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

type Normalizer struct {
	logger *zap.Logger
}

func NewNormalizer(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger.Named("hiredate")}
}

// Normalize returns the canonical form of raw. ok is false when raw is not a
// valid external timestamp; the failure is logged and never returned as an error.
func (n *Normalizer) Normalize(raw, column string) (string, bool) {
	t, err := parseExternal(raw)
	if err != nil {
		n.logger.Warn("invalid date value",
			zap.String("column", column),
			zap.String("value", raw),
			zap.Error(err),
		)
		return "", false
	}
	return t.Format(CanonicalLayout), true
}

// Parse reads a canonical value produced by Normalize.
func Parse(canonical string) (time.Time, error) {
	return time.Parse(CanonicalLayout, canonical)
}

func parseExternal(raw string) (time.Time, error) {
	value := strings.Trim(raw, " ,\t")
	if !externalShape.MatchString(value) {
		return time.Time{}, &time.ParseError{
			Layout:  ExternalLayout,
			Value:   value,
			Message: ": does not match " + ExternalLayout,
		}
	}
	return time.Parse(ExternalLayout, value)
}
