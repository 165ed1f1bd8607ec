package utils

import (
	"fmt"
	"strings"
)

// NormalizeTicker uppercases a raw ticker symbol and applies the NSE suffix
// when no exchange suffix is present. Malformed symbols are rejected before
// any analysis starts.
func NormalizeTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		return "", fmt.Errorf("ticker is empty")
	}
	base := strings.TrimSuffix(strings.TrimSuffix(ticker, ".NS"), ".BO")
	if base == "" {
		return "", fmt.Errorf("ticker %q has no symbol part", raw)
	}
	for _, r := range base {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' && r != '&' {
			return "", fmt.Errorf("ticker %q contains invalid character %q", raw, r)
		}
	}
	if !strings.HasSuffix(ticker, ".NS") && !strings.HasSuffix(ticker, ".BO") {
		ticker += ".NS"
	}
	return ticker, nil
}
