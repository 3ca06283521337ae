package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrPresetNotFound = errors.New("preset not found")
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
