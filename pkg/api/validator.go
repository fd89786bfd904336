package api

import (
	"errors"
	"fmt"
	"unicode"
)

// MaxNameLen - предел длины отображаемого имени охотника.
const MaxNameLen = 64

// ValidateName проверяет имя из внешнего источника: ядро считает его
// непрозрачной строкой ограниченной длины.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name exceeds %d bytes", MaxNameLen)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return errors.New("name contains non-printable characters")
		}
	}
	return nil
}
