package header

import "strings"

// Normalized form classes. These are the closed vocabulary the rest of the
// pipeline dispatches on; CONFORMED SUBMISSION TYPE is a much wider field.
const (
	ClassForm4    = "FORM4"
	ClassForm3    = "FORM3"
	ClassForm5    = "FORM5"
	ClassForm144  = "FORM144"
	Class8K       = "8K"
	ClassSC13D    = "SC13D"
	ClassSC13G    = "SC13G"
	Class13FHR    = "13F-HR"
	Class13FNT    = "13F-NT"
	ClassDEF14A   = "DEF14A"
	ClassFormD    = "FORMD"
	ClassS1       = "S1"
	Class424B     = "424B"
	Class10K      = "10K"
	Class10Q      = "10Q"
	ClassForeign  = "FOREIGN" // 20-F / 6-K / 40-F
	ClassSCTO     = "SCTO"    // SC TO* / SC 13E*
	ClassOther    = "OTHER"
)

// exact holds submission types with a one-to-one mapping to a form class.
var exact = map[string]string{
	"4":           ClassForm4,
	"4/A":         ClassForm4,
	"3":           ClassForm3,
	"3/A":         ClassForm3,
	"5":           ClassForm5,
	"5/A":         ClassForm5,
	"144":         ClassForm144,
	"144/A":       ClassForm144,
	"13F-HR":      Class13FHR,
	"13F-HR/A":    Class13FHR,
	"13F-NT":      Class13FNT,
	"13F-NT/A":    Class13FNT,
	"DEF 14A":     ClassDEF14A,
	"DEFA14A":     ClassDEF14A,
	"DEFC14A":     ClassDEF14A,
	"DEFM14A":     ClassDEF14A,
	"PRE 14A":     ClassDEF14A,
	"PREM14A":     ClassDEF14A,
	"D":           ClassFormD,
	"D/A":         ClassFormD,
	"S-1":         ClassS1,
	"S-1/A":       ClassS1,
	"F-1":         ClassS1,
	"F-1/A":       ClassS1,
	"S-4":         ClassS1,
	"S-4/A":       ClassS1,
	"F-4":         ClassS1,
	"F-4/A":       ClassS1,
	"10-K":        Class10K,
	"10-K/A":      Class10K,
	"10-KSB":      Class10K,
	"10-Q":        Class10Q,
	"10-Q/A":      Class10Q,
	"20-F":        ClassForeign,
	"20-F/A":      ClassForeign,
	"6-K":         ClassForeign,
	"6-K/A":       ClassForeign,
	"40-F":        ClassForeign,
	"40-F/A":      ClassForeign,
}

// NormalizeFormClass maps a CONFORMED SUBMISSION TYPE value to its closed
// normalized form class. Prefix families (8-K, SC 13D/G, 424B, SC TO/13E)
// are matched after the exact table misses.
func NormalizeFormClass(submissionType string) string {
	t := strings.ToUpper(strings.TrimSpace(submissionType))
	if class, ok := exact[t]; ok {
		return class
	}

	switch {
	case strings.HasPrefix(t, "8-K"):
		return Class8K
	case strings.HasPrefix(t, "SC 13D"):
		return ClassSC13D
	case strings.HasPrefix(t, "SC 13G"):
		return ClassSC13G
	case strings.HasPrefix(t, "424B"):
		return Class424B
	case strings.HasPrefix(t, "SC TO"), strings.HasPrefix(t, "SC 13E"):
		return ClassSCTO
	default:
		return ClassOther
	}
}
