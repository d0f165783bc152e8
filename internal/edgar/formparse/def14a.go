package formparse

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

var (
	neoNameTitleRe = regexp.MustCompile(`([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3}),\s*(Chief\s+\w+\s+Officer|President|CEO|CFO|COO|Executive Vice President|Senior Vice President)`)
	titleNeoNameRe = regexp.MustCompile(`(Chief\s+\w+\s+Officer|President|CEO|CFO|COO)\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3})`)
	directorNameRe = regexp.MustCompile(`([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3}),\s*Director\b`)
	educationRe    = regexp.MustCompile(`[A-Z][a-zA-Z.&'\s]+(University|College|Institute|School|Academy)\b`)
)

// def14AParse handles DEF 14A and the definitive/preliminary proxy variants.
// Strips HTML, then harvests Named Executive Officer names, director names,
// and education mentions by regex. Deep table parsing (compensation
// tables, equity grants) is delegated to downstream LLM augmentation and is
// intentionally not attempted here.
func def14AParse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "def14a",
	}

	markup, ok := tagextract.EmbeddedMarkup(document)
	if !ok {
		pf.ParseError = "no embedded proxy HTML"
		return pf
	}
	body := tagextract.StripHTML(markup)

	seen := map[string]bool{}
	addPerson := func(name, role string) {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name) + "|" + role
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		pf.Persons = append(pf.Persons, model.Person{Name: name, Role: role})
	}

	for _, m := range neoNameTitleRe.FindAllStringSubmatch(body, -1) {
		addPerson(m[1], m[2])
	}
	for _, m := range titleNeoNameRe.FindAllStringSubmatch(body, -1) {
		addPerson(m[2], m[1])
	}
	for _, m := range directorNameRe.FindAllStringSubmatch(body, -1) {
		addPerson(m[1], "Director")
	}

	eduSeen := map[string]bool{}
	for _, m := range educationRe.FindAllString(body, -1) {
		m = strings.TrimSpace(m)
		if !eduSeen[m] {
			eduSeen[m] = true
			pf.EducationMentions = append(pf.EducationMentions, m)
		}
	}

	return pf
}
