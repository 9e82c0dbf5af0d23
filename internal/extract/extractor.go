// Package extract turns raw invoice text into a typed Invoice using ordered
// per-field pattern cascades. Extraction never fails: a field that matches
// nothing keeps its default, so callers must treat defaults as "unknown".
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xyloai/xylo/internal/invoice"
)

// Extract parses raw invoice text into an Invoice. It is a pure function of
// its input: same text in, same fields out.
func Extract(text string) invoice.Invoice {
	inv := invoice.New()

	// Amount matching runs on a full whitespace collapse so keywords and
	// values split across lines still sit adjacent. Every other cascade
	// operates on the raw text, where line breaks are meaningful.
	amountText := whitespaceRunPattern.ReplaceAllString(spaceRunPattern.ReplaceAllString(text, " "), " ")

	inv.VendorName = extractVendor(text)
	inv.Currency = extractCurrency(text)
	inv.Amount = extractAmount(amountText)

	if n, ok := extractInvoiceNumber(text); ok {
		inv.InvoiceNumber = n
	}

	inv.Date = extractDate(text)
	inv.PONumber = extractPONumber(text)
	inv.GSTIN = firstMatch(gstinPattern, text)
	inv.IBAN = extractIBAN(text)
	inv.IFSC = extractIFSC(text)
	inv.AccountNumber = extractAccountNumber(text)

	return inv
}

func extractVendor(text string) string {
	if m := vendorLabelPattern.FindStringSubmatch(text); m != nil {
		return truncate(strings.TrimSpace(m[1]), 60)
	}

	// Fallback: the first of the opening non-blank lines that is long
	// enough and not invoice boilerplate.
	var seen int

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		seen++
		if seen > 5 {
			break
		}

		if len(line) > 3 && !vendorBoilerplatePattern.MatchString(line) {
			return truncate(line, 60)
		}
	}

	return invoice.DefaultVendorName
}

func extractCurrency(text string) invoice.Currency {
	for _, c := range currencyPatterns {
		if c.pattern.MatchString(text) {
			return invoice.Currency(c.currency)
		}
	}

	return invoice.CurrencyUSD
}

// extractAmount builds candidate pools A-D in priority order. Pool A
// (total/due keyword adjacency) dominates: if it is non-empty the result is
// max(A), regardless of larger numbers elsewhere. Pool D is collected only
// when A-C all came up empty.
func extractAmount(text string) decimal.Decimal {
	poolA := amountCandidates(amountKeywordPattern, text)

	candidates := append([]decimal.Decimal{}, poolA...)
	candidates = append(candidates, amountCandidates(amountSymbolPattern, text)...)
	candidates = append(candidates, amountCandidates(amountCodePattern, text)...)

	if len(candidates) == 0 {
		candidates = amountCandidates(amountBarePattern, text)
	}

	if len(poolA) > 0 {
		return maxDecimal(poolA)
	}

	if len(candidates) > 0 {
		return maxDecimal(candidates)
	}

	return decimal.Zero
}

// amountCandidates collects parseable captures for one pool. Tokens that
// fail numeric parsing are discarded from the pool, never the extraction.
func amountCandidates(pattern *regexp.Regexp, text string) []decimal.Decimal {
	var out []decimal.Decimal

	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")

		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}

		out = append(out, d)
	}

	return out
}

func maxDecimal(ds []decimal.Decimal) decimal.Decimal {
	best := ds[0]
	for _, d := range ds[1:] {
		if d.GreaterThan(best) {
			best = d
		}
	}

	return best
}

func extractInvoiceNumber(text string) (string, bool) {
	for _, pattern := range invoiceNumberPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		candidate := strings.TrimSpace(m[1])
		if digitPattern.MatchString(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func extractDate(text string) *string {
	for _, pattern := range datePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			date := strings.TrimSpace(m[1])
			return &date
		}
	}

	return nil
}

func extractPONumber(text string) *string {
	for _, pattern := range poPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		candidate := strings.TrimSpace(m[1])
		if digitPattern.MatchString(candidate) && !poGenericPattern.MatchString(candidate) {
			return &candidate
		}
	}

	return nil
}

func extractIBAN(text string) *string {
	m := ibanPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	candidate := m[1]
	if len(candidate) < 15 || len(candidate) > 34 {
		return nil
	}

	if _, ok := ibanCountries[candidate[:2]]; !ok {
		return nil
	}

	return &candidate
}

func extractIFSC(text string) *string {
	return firstMatch(ifscPattern, text)
}

func extractAccountNumber(text string) *string {
	m := accountNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	acc := strings.TrimSpace(strings.ReplaceAll(m[1], "-", ""))

	return &acc
}

func firstMatch(pattern *regexp.Regexp, text string) *string {
	if m := pattern.FindString(text); m != "" {
		return &m
	}

	return nil
}

// truncate cuts on runes, not bytes, so a multi-byte vendor name never ends
// in a partial character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}

	return s
}
