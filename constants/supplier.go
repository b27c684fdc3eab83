package constants

import (
	"strings"
)

// Supplier identifies which wholesaler produced an invoice document.
type Supplier string

const (
	Colorama Supplier = "Colorama"
	AAH      Supplier = "AAH"
	Alliance Supplier = "Alliance"
	Lexon    Supplier = "Lexon"
	Unknown  Supplier = "Unknown"
)

var allSuppliers = []Supplier{
	Colorama,
	AAH,
	Alliance,
	Lexon,
	Unknown,
}

func AsStringSlice() []string {
	result := make([]string, len(allSuppliers))
	for i, s := range allSuppliers {
		result[i] = string(s)
	}
	return result
}

// Canonicalize maps a free-form supplier label back onto the closed set.
func Canonicalize(input string) (Supplier, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, s := range allSuppliers {
		if normalized == strings.ToLower(string(s)) {
			return s, true
		}
	}
	return Unknown, false
}
