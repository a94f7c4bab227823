// Package domain models the Lake Name Resolver's core types and pure
// algorithms: the Normalizer and the Matcher.
//
// # Data Source
//
// The authoritative dataset is a Washington-state extract of the USGS
// Geographic Names Information System (GNIS), restricted at ingest to
// features of type lake, reservoir, and pond. Each record carries an
// official name, a county, a lat/lng pair, and zero or more alternative
// names. Ingestion from the raw pipe-delimited GNIS extract happens
// upstream of this package; the Gazetteer Store (package gazetteer) only
// ever reads the pre-computed JSON it produces.
//
// # Raw Designation Conventions
//
// Agency-supplied lake designations are noisy in predictable ways:
//
//	Abbreviations:
//	  "LK"/"LKS" → lake/lakes, "PD"/"PND" → pond, "RES" → reservoir,
//	  "PRK"/"PK" → park, "CO"/"CNTY" → county, "ST" → saint (not "street" —
//	  this is a lake-name corpus), "MT"/"MTN" → mount/mountain,
//	  directional abbreviations (N/S/E/W/NE/NW/SE/SW) expand in full.
//
//	County hints:
//	  A 3-5 letter uppercase code in parentheses, e.g. "(SNOH)", is the most
//	  reliable signal and is checked first. Failing that, "<CODE> CO" or
//	  "<CODE> COUNTY" substrings, then a bare county name appearing anywhere
//	  in the raw string. See [detectCountyHint].
//
//	Separators:
//	  "&" becomes the word "and"; "-", "_", "/", and parentheses are all
//	  normalized to spaces before tokenization; everything else
//	  non-alphanumeric is stripped.
//
// # Matching
//
// The Matcher (see [Match]) narrows candidates by county hint when present,
// scores each candidate's own tokens and its alternative names' tokens with
// a composite of exact token overlap, partial (substring) token overlap, and
// an edit-distance penalty, and falls back to pure edit distance over the
// full gazetteer when nothing clears the acceptance threshold. The fuzzy
// fallback is the floor of the system: given a non-empty gazetteer, it
// always returns a non-null answer.
package domain
