package extract

import "regexp"

// Pattern library: per-field ordered pattern lists. Order matters: the
// first matching entry in a cascade wins (amounts are pooled instead, see
// extractAmount).

var vendorLabelPattern = regexp.MustCompile(
	`(?im)(?:From|Vendor|Bill\s*From|Seller|Company|Billed\s*By)[:\s]+([A-Za-z0-9\s.,&'\-]+?)(?:\n|$|,|\|)`,
)

// Lines starting with generic invoice boilerplate are skipped by the vendor
// first-lines fallback.
var vendorBoilerplatePattern = regexp.MustCompile(`(?i)^(invoice|bill|receipt|tax|gst)`)

// Currency families in detection priority order. USD is the fallback, so it
// carries no pattern.
var currencyPatterns = []struct {
	currency string
	pattern  *regexp.Regexp
}{
	{"INR", regexp.MustCompile(`(?i)(?:INR|Rs\.?\s|₹|Rupee)`)},
	{"EUR", regexp.MustCompile(`(?i)(?:EUR|€|Euro)`)},
	{"GBP", regexp.MustCompile(`(?i)(?:GBP|£|Pound)`)},
}

// Amount candidate pools, in priority order:
//
//	A: number following a total/due keyword, optionally after a currency mark
//	B: number immediately preceded by a currency symbol
//	C: number immediately followed by a currency code word
//	D: any bare numeric token with 2+ integer digits (last resort)
var (
	amountKeywordPattern = regexp.MustCompile(
		`(?i)(?:Total|Amount\s*Due|Balance\s*Due|Grand\s*Total|Invoice\s*Total|Net\s*Amount|Sub\s*Total|Due\s*Amount)` +
			`[\s:₹$€£Rs.]*` +
			`([\d,]+(?:\.\d{1,2})?)`,
	)
	amountSymbolPattern = regexp.MustCompile(
		`(?i)(?:₹|Rs\.?\s*|\$|€|£)\s*([\d,]+(?:\.\d{1,2})?)`,
	)
	amountCodePattern = regexp.MustCompile(
		`(?i)([\d,]+(?:\.\d{1,2})?)\s*(?:INR|USD|EUR|GBP|Rs\.?)\b`,
	)
	amountBarePattern = regexp.MustCompile(
		`\b(\d{2,}(?:,\d{2,3})*(?:\.\d{1,2})?)\b`,
	)
)

// Invoice number cascade. A match is only accepted if it contains a digit;
// otherwise the cascade continues.
var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Invoice|Inv|Bill|Receipt)\s*(?:No\.?|Number|#|:)?\s*[:\-#]?\s*([A-Z0-9][A-Z0-9\-/]{3,})`),
	regexp.MustCompile(`(?i)#\s*([A-Z0-9\-]{4,})`),
	regexp.MustCompile(`(?i)(?:Invoice|Bill)\s+(?:No|Number)[:\s.]+([A-Z0-9\-]{3,})`),
}

// Dates are kept as raw matched text, no calendar normalization.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Invoice\s*Date|Bill\s*Date|Date\s*of\s*Issue|Date)[:\s]+(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`),
}

// PO number cascade. Accepted only with a digit and when not a generic word.
var (
	poPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:PO|P\.O\.|Purchase\s*Order\s*(?:No\.?|Number|#)?)[:\s#\-]+([A-Z0-9][A-Z0-9\-]{2,})`),
		regexp.MustCompile(`(?i)PO\s*(?:No\.?|Number)[:\s]+([A-Z0-9\-]{3,})`),
	}
	poGenericPattern = regexp.MustCompile(`(?i)^(number|no|date|ref|order)$`)
)

var gstinPattern = regexp.MustCompile(`\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]`)

// IBAN shape match; validated against ibanCountries and a 15-34 length check
// to reject look-alike identifiers (logistics order IDs share the shape).
var ibanPattern = regexp.MustCompile(`\b([A-Z]{2}\d{2}[A-Z0-9]{11,30})\b`)

var ifscPattern = regexp.MustCompile(`\b([A-Z]{4}0[A-Z0-9]{6})\b`)

var accountNumberPattern = regexp.MustCompile(`(?i)(?:Account\s*No\.?|Acc\.?\s*No\.?|A/c\s*No\.?)[:\s]*([\d\-]{9,18})`)

var digitPattern = regexp.MustCompile(`\d`)

// Whitespace normalization passes. The aggressive variant is used for
// amount-adjacent matching where line breaks split keywords from values.
var (
	spaceRunPattern      = regexp.MustCompile(`[ \t]+`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// ISO 3166-1 alpha-2 codes accepted as IBAN prefixes.
var ibanCountries = map[string]struct{}{}

func init() {
	codes := []string{
		"GB", "DE", "FR", "IN", "US", "AE", "SA", "QA", "KW", "BH", "OM", "JO", "LB",
		"CH", "AT", "BE", "NL", "ES", "IT", "PT", "SE", "NO", "DK", "FI", "PL", "CZ",
		"HU", "RO", "BG", "HR", "SI", "SK", "LT", "LV", "EE", "MT", "CY", "LU", "IE",
		"GR", "TR", "IL", "EG", "ZA", "NG", "KE", "GH", "TZ", "UG", "RW", "ET", "SN",
		"CI", "CM", "MG", "MZ", "AO", "ZM", "ZW", "MU", "SC", "MV", "LK", "BD", "PK",
		"NP", "AF", "MM", "TH", "VN", "PH", "ID", "MY", "SG", "HK", "TW", "KR", "JP",
		"CN", "MN", "KZ", "UZ", "TM", "AZ", "GE", "AM", "MD", "UA", "BY", "RS", "BA",
		"MK", "AL", "ME", "XK", "IS", "LI", "MC", "SM", "VA", "AD", "GL", "FO",
	}
	for _, c := range codes {
		ibanCountries[c] = struct{}{}
	}
}
