// Package tagextract provides byte-level primitives for pulling values out of
// SEC filing bodies. Filings are treated as opaque bytes: no schema
// validation, no namespace handling, just tag search and entity decoding.
package tagextract

import (
	"regexp"
	"strconv"
	"strings"
)

// FirstTag returns the text between the first `<tag>` and its matching
// `</tag>`, unwrapping an inner `<value>...</value>` when the element's
// content begins with one. The second return value is false when the tag is
// not found.
func FirstTag(body, tag string) (string, bool) {
	open := "<" + tag + ">"
	closeTag := "</" + tag + ">"

	start := strings.Index(body, open)
	if start == -1 {
		return "", false
	}
	start += len(open)

	end := strings.Index(body[start:], closeTag)
	if end == -1 {
		return "", false
	}
	inner := body[start : start+end]

	if strings.HasPrefix(strings.TrimSpace(inner), "<value>") {
		if v, ok := FirstTag(inner, "value"); ok {
			return strings.TrimSpace(v), true
		}
	}
	return strings.TrimSpace(inner), true
}

// AllTags returns every `<tag>...</tag>` occurrence as a raw substring, in
// document order. Overlapping or malformed tags are skipped rather than
// erroring.
func AllTags(body, tag string) []string {
	open := "<" + tag + ">"
	closeTag := "</" + tag + ">"

	var out []string
	pos := 0
	for {
		start := strings.Index(body[pos:], open)
		if start == -1 {
			break
		}
		start += pos + len(open)

		end := strings.Index(body[start:], closeTag)
		if end == -1 {
			break
		}
		out = append(out, strings.TrimSpace(body[start:start+end]))
		pos = start + end + len(closeTag)
	}
	return out
}

// AsInt64 coerces a tag's text content to an int64, stripping thousands
// separators. Returns 0, false if the text isn't parseable.
func AsInt64(s string) (int64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsFloat64 coerces a tag's text content to a float64, stripping thousands
// separators and a leading '$'.
func AsFloat64(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsBool coerces a tag's text content to a bool. "1" and "true"
// (case-insensitive) are true; everything else is false.
func AsBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true"
}

// EmbeddedXML extracts the first <XML>...</XML> block nested within the
// first <TEXT>...</TEXT> block of a filing document, if any.
func EmbeddedXML(document string) (string, bool) {
	text, ok := FirstTag(document, "TEXT")
	if !ok {
		text = document
	}
	return FirstTag(text, "XML")
}

// EmbeddedMarkup extracts the richest markup body available in a document,
// preferring XBRL, then HTML, then plain TEXT.
func EmbeddedMarkup(document string) (string, bool) {
	text, ok := FirstTag(document, "TEXT")
	if !ok {
		text = document
	}
	if v, ok := FirstTag(text, "XBRL"); ok {
		return v, true
	}
	if v, ok := FirstTag(text, "HTML"); ok {
		return v, true
	}
	if text != "" {
		return text, true
	}
	return "", false
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

// DecodeEntities replaces the closed set of HTML/XML entities the corpus
// actually emits: amp, lt, gt, quot, #39, apos.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

var (
	htmlTagRe = regexp.MustCompile(`(?s)<[^>]+>`)
	multiWSRe = regexp.MustCompile(`\s{2,}`)
)

// StripHTML removes every HTML/XML tag and collapses whitespace, producing
// plain text suitable for pattern scanning and regex harvesting.
func StripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = DecodeEntities(s)
	s = multiWSRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
