package formparse

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// item8KCategories maps item numbers to their disclosure category.
var item8KCategories = map[string]string{
	"1.01": "AGREEMENT", "1.02": "AGREEMENT", "1.03": "AGREEMENT",
	"2.01": "M&A", "2.03": "DEBT", "2.04": "DEBT", "2.05": "DEBT", "2.06": "DEBT",
	"2.02": "EARNINGS",
	"5.01": "M&A", "5.02": "PERSONNEL", "5.03": "GOVERNANCE", "5.07": "GOVERNANCE",
	"3.01": "DISCLOSURE", "3.02": "DISCLOSURE", "3.03": "DISCLOSURE",
	"4.01": "DISCLOSURE", "4.02": "DISCLOSURE",
	"8.01": "DISCLOSURE",
	"9.01": "EXHIBITS",
}

var (
	personnelVerbRe  = regexp.MustCompile(`\b((?i:appointed|hired|named|elected|promoted))\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3})`)
	personnelExitRe  = regexp.MustCompile(`\b((?i:departure|resignation|retirement|termination))\s+(?i:of)\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3})`)
	personnelTitleRe = regexp.MustCompile(`\b((?i:Mr|Ms|Mrs|Dr))\.\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){0,3})`)
	roleWindow       = 300
)

// form8KParse classifies 8-K items into disclosure categories, sets the
// personnel/M&A flags, and for personnel events harvests names from body
// text with an adjacent role-title search.
func form8KParse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "form8k",
	}

	var categories []string
	for _, item := range h.Items {
		if cat, ok := item8KCategories[item]; ok {
			categories = append(categories, cat)
			switch cat {
			case "PERSONNEL":
				pf.Flags.IsPersonnelEvent = true
			case "M&A":
				pf.Flags.IsMAEvent = true
			}
		}
	}

	markup, _ := tagextract.EmbeddedMarkup(document)
	body := tagextract.StripHTML(markup)

	if pf.Flags.IsPersonnelEvent && body != "" {
		pf.Persons = harvestPersonnelNames(body)
	}

	if pf.Flags.IsPersonnelEvent {
		pf.Alerts = append(pf.Alerts, model.Alert{
			Kind: "PERSONNEL_EVENT", Severity: model.SeverityHigh,
			Message: "8-K personnel change disclosed",
		})
	}
	if pf.Flags.IsMAEvent {
		pf.Alerts = append(pf.Alerts, model.Alert{
			Kind: "MA_EVENT", Severity: model.SeverityHigh,
			Message: "8-K M&A event disclosed",
		})
	}

	return pf
}

func harvestPersonnelNames(body string) []model.Person {
	var persons []model.Person
	seen := map[string]bool{}

	add := func(name string, start, end int) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		persons = append(persons, model.Person{Name: name, Role: roleNear(body, start, end)})
	}

	for _, m := range personnelVerbRe.FindAllStringSubmatchIndex(body, -1) {
		add(body[m[4]:m[5]], m[0], m[1])
	}
	for _, m := range personnelExitRe.FindAllStringSubmatchIndex(body, -1) {
		add(body[m[4]:m[5]], m[0], m[1])
	}
	for _, m := range personnelTitleRe.FindAllStringSubmatchIndex(body, -1) {
		add(body[m[4]:m[5]], m[0], m[1])
	}

	return persons
}

// titleRe finds a role/title token within the adjacent window.
var titleRe = regexp.MustCompile(`(?i)\b(Chief\s+\w+\s+Officer|President|Chairman|CEO|CFO|COO|CTO|Director|Vice President|Treasurer|Secretary)\b`)

func roleNear(body string, start, end int) string {
	lo := start - roleWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + roleWindow
	if hi > len(body) {
		hi = len(body)
	}
	window := body[lo:hi]
	if m := titleRe.FindString(window); m != "" {
		return m
	}
	return ""
}
