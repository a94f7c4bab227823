package domain

import (
	"regexp"
	"sort"
	"strings"
)

// tokenExpansions maps a lowercase abbreviation token to the word(s) it
// expands to.
var tokenExpansions = map[string][]string{
	"lk":   {"lake"},
	"lks":  {"lakes"},
	"pd":   {"pond"},
	"pnd":  {"pond"},
	"prk":  {"park"},
	"pk":   {"park"},
	"res":  {"reservoir"},
	"co":   {"county"},
	"cnty": {"county"},
	"st":   {"saint"},
	"mt":   {"mount"},
	"mtn":  {"mountain"},
	"ctr":  {"center"},
	"ctrs": {"centers"},
	"no":   {"number"},
	"n":    {"north"},
	"s":    {"south"},
	"e":    {"east"},
	"w":    {"west"},
	"ne":   {"northeast"},
	"nw":   {"northwest"},
	"se":   {"southeast"},
	"sw":   {"southwest"},
}

// countyAbbreviations maps a 3-5 letter uppercase county code to the
// county's lowercase name, fixed for Washington State's 39 counties.
var countyAbbreviations = map[string]string{
	"ADAM": "adams",
	"ASOT": "asotin",
	"BENT": "benton",
	"CHEL": "chelan",
	"CLAL": "clallam",
	"CLAR": "clark",
	"COLU": "columbia",
	"COWL": "cowlitz",
	"DOUG": "douglas",
	"FERR": "ferry",
	"FRAN": "franklin",
	"GARF": "garfield",
	"GRAN": "grant",
	"GRAY": "grays harbor",
	"ISLA": "island",
	"JEFF": "jefferson",
	"KING": "king",
	"KITS": "kitsap",
	"KITT": "kittitas",
	"KLIC": "klickitat",
	"LEWI": "lewis",
	"LINC": "lincoln",
	"MASO": "mason",
	"OKAN": "okanogan",
	"PACI": "pacific",
	"PEND": "pend oreille",
	"PIER": "pierce",
	"SANJ": "san juan",
	"SKAG": "skagit",
	"SKAM": "skamania",
	"SNOH": "snohomish",
	"SPOK": "spokane",
	"STEV": "stevens",
	"THUR": "thurston",
	"WAHK": "wahkiakum",
	"WALL": "walla walla",
	"WHAT": "whatcom",
	"WHIT": "whitman",
	"YAKI": "yakima",
}

// countyCodesOrdered lists countyAbbreviations' keys in a fixed order, sorted
// once at package init. Map iteration order is randomized per range in Go,
// so detectCountyHint's substring scans use this slice instead of ranging
// countyAbbreviations directly — otherwise a raw name containing more than
// one qualifying code or county name could make Normalize return a
// different CountyHint across calls on identical input.
var countyCodesOrdered = sortedKeys(countyAbbreviations)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	// parenCodeRe matches one or more parenthesized uppercase codes of
	// 3-5 letters, e.g. "Sunset LK (SNOH)" -> "SNOH".
	parenCodeRe = regexp.MustCompile(`\(([A-Z]{3,5})\)`)

	// nonAlphanumericRe strips anything left over after the known
	// separator characters have been replaced with spaces.
	nonAlphanumericRe = regexp.MustCompile(`[^0-9a-zA-Z\s]`)

	// countyInputJunkRe removes everything but letters and spaces from an
	// explicit or detected county hint after "county"/"cnty" are stripped.
	countyInputJunkRe = regexp.MustCompile(`[^a-z\s]`)

	// whitespaceRe collapses runs of whitespace to a single space.
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize converts a raw agency-supplied lake designation into a
// NormalizedQuery. Deterministic and pure. explicitCounty, if non-empty,
// overrides any county hint detected in rawName.
func Normalize(rawName string, explicitCounty string) NormalizedQuery {
	if strings.TrimSpace(rawName) == "" {
		return NormalizedQuery{}
	}

	countyHint := normalizeCountyInput(explicitCounty)
	if countyHint == "" {
		countyHint = normalizeCountyInput(detectCountyHint(rawName))
	}

	working := rawName
	working = strings.ReplaceAll(working, "&", " and ")
	working = strings.ReplaceAll(working, "-", " ")
	working = strings.ReplaceAll(working, "_", " ")
	working = strings.ReplaceAll(working, "/", " ")
	working = strings.ReplaceAll(working, "(", " ")
	working = strings.ReplaceAll(working, ")", " ")
	working = nonAlphanumericRe.ReplaceAllString(working, " ")
	working = strings.ToLower(working)

	rawTokens := strings.Fields(working)
	expanded := make([]string, 0, len(rawTokens)*2)
	for _, tok := range rawTokens {
		expanded = append(expanded, expandToken(tok)...)
	}

	tokens := dedupePreserveOrder(expanded)

	return NormalizedQuery{
		Normalized: strings.Join(tokens, " "),
		Tokens:     tokens,
		CountyHint: countyHint,
	}
}

// expandToken expands a single lowercase token to one or more words: via
// the abbreviation table, via the county-code table (a bare code typed in
// running text, e.g. "SNOH" without parentheses), or unchanged.
func expandToken(token string) []string {
	if expansion, ok := tokenExpansions[token]; ok {
		return expansion
	}
	if county, ok := countyAbbreviations[strings.ToUpper(token)]; ok {
		return strings.Fields(county)
	}
	return []string{token}
}

// detectCountyHint scans the raw uppercase form of rawName for a county
// signal, in order of reliability: a parenthesized code, a "<CODE> CO" or
// "<CODE> COUNTY" substring, then a bare county name. Returns "" if none
// match.
func detectCountyHint(rawName string) string {
	upper := strings.ToUpper(rawName)

	for _, m := range parenCodeRe.FindAllStringSubmatch(upper, -1) {
		if county, ok := countyAbbreviations[m[1]]; ok {
			return county
		}
	}

	for _, code := range countyCodesOrdered {
		if strings.Contains(upper, code+" CO") || strings.Contains(upper, code+" COUNTY") {
			return countyAbbreviations[code]
		}
	}

	for _, code := range countyCodesOrdered {
		county := countyAbbreviations[code]
		if strings.Contains(upper, strings.ToUpper(county)) {
			return county
		}
	}

	return ""
}

// normalizeCountyInput lowercases a county hint, strips "county"/"cnty" and
// any non-alphabetic characters, and collapses whitespace. Returns "" for
// an empty or all-junk input.
func normalizeCountyInput(value string) string {
	if value == "" {
		return ""
	}
	cleaned := strings.ToLower(value)
	cleaned = strings.ReplaceAll(cleaned, "county", " ")
	cleaned = strings.ReplaceAll(cleaned, "cnty", " ")
	cleaned = countyInputJunkRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
	return cleaned
}

// dedupePreserveOrder returns tokens with duplicates removed, keeping the
// first occurrence's position.
func dedupePreserveOrder(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
