package prospect

import "strings"

// nicknameGroups is the fixed bidirectional nickname equivalence table.
// Every member of a group is considered interchangeable with every other
// member when generating first-name variants.
var nicknameGroups = [][]string{
	{"william", "bill", "will", "billy", "willy", "liam"},
	{"robert", "bob", "rob", "bobby", "robbie"},
	{"richard", "rick", "dick", "ricky", "rich"},
	{"james", "jim", "jimmy", "jamie"},
	{"john", "jack", "johnny", "jon"},
	{"joseph", "joe", "joey"},
	{"michael", "mike", "mikey", "mick"},
	{"christopher", "chris", "topher"},
	{"daniel", "dan", "danny"},
	{"matthew", "matt"},
	{"anthony", "tony"},
	{"charles", "charlie", "chuck", "chaz"},
	{"thomas", "tom", "tommy"},
	{"edward", "ed", "eddie", "ted", "teddy"},
	{"elizabeth", "liz", "beth", "betty", "eliza", "lizzie"},
	{"katherine", "catherine", "kate", "katie", "kathy", "cathy", "kit"},
	{"margaret", "maggie", "meg", "peggy", "marge"},
	{"jennifer", "jen", "jenny"},
	{"patricia", "pat", "patty", "trish"},
	{"deborah", "debra", "deb", "debbie"},
	{"susan", "sue", "susie"},
	{"rebecca", "becky", "becca"},
	{"alexander", "alex", "xander"},
	{"nicholas", "nick", "nicky"},
	{"samuel", "sam", "sammy"},
	{"benjamin", "ben", "benny"},
	{"gregory", "greg"},
	{"jonathan", "jon", "johnny"},
	{"andrew", "andy", "drew"},
	{"kenneth", "ken", "kenny"},
	{"timothy", "tim", "timmy"},
	{"steven", "stephen", "steve", "stevie"},
}

var nicknameIndex = buildNicknameIndex()

func buildNicknameIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, group := range nicknameGroups {
		for _, name := range group {
			var equivalents []string
			for _, other := range group {
				if other != name {
					equivalents = append(equivalents, other)
				}
			}
			idx[name] = equivalents
		}
	}
	return idx
}

const minVariantLength = 4

// GenerateVariants applies the ordered variant-generation procedure from a
// raw prospect name and returns the union of results, deduplicated, with
// short variants discarded.
//
// Order: base form, suffix stripping, hyphen-to-space, middle-name
// dropping, nickname expansion. Each stage feeds forward into the next on
// its own output, and all intermediate forms are kept in the result set.
func GenerateVariants(rawName string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(v string) {
		if len(v) < minVariantLength {
			return
		}
		if seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	base := Normalize(strings.ReplaceAll(rawName, ",", ""))
	add(base)

	stripped := StripPersonalSuffix(base)
	add(stripped)

	forms := []string{base, stripped}
	var hyphenForms []string
	for _, f := range forms {
		h := Normalize(strings.ReplaceAll(f, "-", " "))
		add(h)
		hyphenForms = append(hyphenForms, h)
	}
	forms = append(forms, hyphenForms...)

	var middleDropped []string
	for _, f := range dedupeStrings(forms) {
		tokens := strings.Fields(f)
		if len(tokens) >= 3 {
			md := tokens[0] + " " + tokens[len(tokens)-1]
			add(md)
			middleDropped = append(middleDropped, md)
		}
	}
	forms = append(forms, middleDropped...)

	for _, f := range dedupeStrings(forms) {
		tokens := strings.Fields(f)
		if len(tokens) == 0 {
			continue
		}
		first := tokens[0]
		equivalents, ok := nicknameIndex[first]
		if !ok {
			continue
		}
		rest := strings.Join(tokens[1:], " ")
		for _, eq := range equivalents {
			if rest != "" {
				add(strings.TrimSpace(eq + " " + rest))
			} else {
				add(eq)
			}
			if len(tokens) >= 2 {
				add(strings.TrimSpace(eq + " " + tokens[len(tokens)-1]))
			}
		}
	}

	return out
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// ReverseKey turns "first middle last" into "last first middle" for the
// reversed registration the Prospect Index also stores.
func ReverseKey(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) < 2 {
		return normalized
	}
	last := tokens[len(tokens)-1]
	rest := strings.Join(tokens[:len(tokens)-1], " ")
	return last + " " + rest
}
