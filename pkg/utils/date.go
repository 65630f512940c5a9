package utils

import (
	"strings"
	"time"
)

// Layouts aceitos para datas vindas do ESR (ex: 2023-01-05T00:00:00)
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.DateOnly,
}

// ParseDate interpreta a data sem aplicar fuso horário
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
