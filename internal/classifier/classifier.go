// Package classifier maps a Match Record's filing context (form class,
// transaction codes, flags) to a fundraising-oriented signal: a tier,
// dimensions, urgency, and gift-officer guidance. The mapping is a fixed
// deterministic table, not a learned model.
package classifier

import (
	"fmt"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// rule is one entry of the representative-rules table.
type rule struct {
	tier      model.SignalTier
	label     string
	dims      []string
	urgency   model.Urgency
	action    string
}

// Classify implements the deterministic signal mapping. formClass is the
// normalized form class (e.g. "FORM4", "FORM144", "DEF14A").
func Classify(formClass string, transactions []model.Transaction, flags model.Flags) (tier model.SignalTier, label string, dims []string, urgency model.Urgency, action string) {
	r := classify(formClass, transactions, flags)
	return r.tier, r.label, r.dims, r.urgency, r.action
}

func classify(formClass string, transactions []model.Transaction, flags model.Flags) rule {
	codes := codeSet(transactions)

	switch formClass {
	case header.ClassForm4, header.ClassForm5:
		if codes["G"] {
			return rule{model.Tier1, "PHILANTHROPY", []string{"propensity"}, model.UrgencyHigh,
				"Reach out promptly — a stock gift is a strong philanthropic intent signal."}
		}
		if hasSameDayPair(transactions, "M", "S") {
			return rule{model.Tier1, "SAME_DAY_SALE", []string{"liquidity"}, model.UrgencyHigh,
				"Flag for liquidity conversation — option exercise and same-day sale indicate realized cash."}
		}
		if codes["S"] {
			return rule{model.Tier1, "LIQUIDITY", []string{"liquidity"}, model.UrgencyHigh,
				"Flag for liquidity conversation — an open-market sale indicates realized cash."}
		}
		if onlyCodes(codes, "A", "F") {
			return rule{model.Tier2, "CAPACITY", []string{"capacity"}, model.UrgencyLow,
				"Low-urgency capacity signal — monitor, no immediate outreach needed."}
		}
	case header.ClassForm144:
		return rule{model.Tier1, "UPCOMING_LIQUIDITY", []string{"liquidity"}, model.UrgencyHigh,
			"A Form 144 notice of proposed sale — anticipate liquidity before it lands on Form 4."}
	case header.ClassForm3:
		return rule{model.Tier2, "NEW_INSIDER", []string{"context"}, model.UrgencyMedium,
			"New insider filing — confirm identity and add to watch list."}
	case header.ClassDEF14A:
		return rule{model.Tier2, "CAPACITY", []string{"capacity"}, model.UrgencyLow,
			"Proxy filing — review compensation and equity holdings for capacity context."}
	case header.ClassSC13D, header.ClassSC13G:
		return rule{model.Tier2, "CAPACITY", []string{"capacity"}, model.UrgencyMedium,
			"Beneficial ownership filing — confirm stake size and intent."}
	case header.Class13FHR, header.Class13FNT:
		if flags.AUMNotPersonalWealth {
			return rule{model.Tier2, "CAPACITY", []string{"capacity"}, model.UrgencyLow,
				"13F reflects institutional assets under management, not personal wealth — treat capacity estimate with caution."}
		}
		return rule{model.Tier2, "CAPACITY", []string{"capacity"}, model.UrgencyLow, "Review institutional holdings for capacity context."}
	case header.Class8K:
		if flags.IsPersonnelEvent {
			return rule{model.Tier1, "PERSONNEL_EVENT", []string{"liquidity", "capacity"}, model.UrgencyHigh,
				"Executive transition — reassess relationship continuity and upcoming liquidity events."}
		}
		if flags.IsMAEvent {
			return rule{model.Tier1, "MA_EVENT", []string{"liquidity"}, model.UrgencyHigh,
				"M&A event — anticipate a major liquidity event for affected holders."}
		}
	case header.ClassFormD:
		return rule{model.Tier3, "CAPACITY", []string{"capacity"}, model.UrgencyLow,
			"Private offering notice — low-confidence capacity signal, monitor only."}
	case header.ClassS1:
		return rule{model.Tier1, "LIQUIDITY", []string{"liquidity"}, model.UrgencyHigh,
			"Registration statement — a future IPO or offering is a major upcoming liquidity event."}
	case header.ClassSCTO:
		return rule{model.Tier1, "LIQUIDITY", []string{"liquidity"}, model.UrgencyHigh,
			"Tender offer or going-private transaction — a major liquidity event is imminent."}
	}

	return rule{model.Tier3, "CONTEXT", []string{"context"}, model.UrgencyLow,
		"No specific signal rule matched — retain for contextual awareness only."}
}

// Summarize composes the one-line signal summary:
// "[formType] issuer | codeLabel: $value | first-HIGH-alert-message".
func Summarize(formType, issuer string, transactions []model.Transaction, alerts []model.Alert) string {
	codeLabel, value := dominantTransaction(transactions)
	highAlert := firstHighAlert(alerts)

	summary := fmt.Sprintf("%s %s", formType, issuer)
	if codeLabel != "" {
		summary += fmt.Sprintf(" | %s: $%.2f", codeLabel, value)
	}
	if highAlert != "" {
		summary += " | " + highAlert
	}
	return summary
}

func dominantTransaction(transactions []model.Transaction) (string, float64) {
	var best model.Transaction
	for _, tx := range transactions {
		if tx.DollarValue > best.DollarValue {
			best = tx
		}
	}
	if best.CodeLabel == "" {
		return "", 0
	}
	return best.CodeLabel, best.DollarValue
}

func firstHighAlert(alerts []model.Alert) string {
	for _, a := range alerts {
		if a.Severity == model.SeverityHigh {
			return a.Message
		}
	}
	return ""
}

func codeSet(transactions []model.Transaction) map[string]bool {
	set := make(map[string]bool, len(transactions))
	for _, tx := range transactions {
		set[tx.Code] = true
	}
	return set
}

func onlyCodes(codes map[string]bool, allowed ...string) bool {
	if len(codes) == 0 {
		return false
	}
	allow := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		allow[c] = true
	}
	for c := range codes {
		if !allow[c] {
			return false
		}
	}
	return true
}

func hasSameDayPair(transactions []model.Transaction, codeA, codeB string) bool {
	a := make(map[string]bool)
	b := make(map[string]bool)
	for _, tx := range transactions {
		d := tx.Date.Format("2006-01-02")
		switch tx.Code {
		case codeA:
			a[d] = true
		case codeB:
			b[d] = true
		}
	}
	for d := range a {
		if b[d] {
			return true
		}
	}
	return false
}

// Annotate writes Classify + Summarize output onto a copy of r, using the
// filing-level context already carried on it.
func Annotate(r model.MatchRecord, formClass string, transactions []model.Transaction, flags model.Flags, alerts []model.Alert) model.MatchRecord {
	tier, label, dims, urgency, action := Classify(formClass, transactions, flags)
	r.SignalTier = tier
	r.SignalTierLabel = label
	r.Dimensions = dims
	r.Urgency = urgency
	r.GiftOfficerAction = action
	r.SignalSummary = Summarize(r.FormType, r.Issuer, transactions, alerts)
	return r
}
