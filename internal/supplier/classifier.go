// Package supplier identifies which wholesaler produced an invoice and
// carries the per-supplier header and line-item extraction rules.
package supplier

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/nimali/invoice-wizard/constants"
)

// fingerprints are the classification rules, in priority order. Tokens are
// not mutually exclusive (an AAH invoice may mention "alliance" in an
// address), so when several tokens appear the earliest rule wins.
var fingerprints = []struct {
	token    string
	supplier constants.Supplier
}{
	{"laxmico", constants.Colorama},
	{"aah", constants.AAH},
	{"alliance", constants.Alliance},
	{"lexon", constants.Lexon},
}

// matcher finds all fingerprint tokens in a single pass.
var matcher *ahocorasick.Matcher

func init() {
	tokens := make([]string, len(fingerprints))
	for i, fp := range fingerprints {
		tokens[i] = fp.token
	}
	matcher = ahocorasick.NewStringMatcher(tokens)
}

// Detect returns the supplier whose fingerprint token appears in text,
// resolving ties to the earliest rule. Matching is case-insensitive and
// position-independent. Text without any token classifies as Unknown.
func Detect(text string) constants.Supplier {
	hits := matcher.Match([]byte(strings.ToLower(text)))
	best := -1
	for _, h := range hits {
		if best == -1 || h < best {
			best = h
		}
	}
	if best == -1 {
		return constants.Unknown
	}
	return fingerprints[best].supplier
}
