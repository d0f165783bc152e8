package matcher

import "github.com/sells-group/prospect-matcher/internal/model"

// StructuredConfidence implements the confidence matrix: submethod ×
// company_verified. first_middle_only is fixed at 20 regardless of
// verification, since the match is inherently uncertain.
func StructuredConfidence(submethod model.StructuredSubmethod, verified bool) int {
	switch submethod {
	case model.SubmethodExact, model.SubmethodNameSwap:
		if verified {
			return 98
		}
		return 60
	case model.SubmethodNameReorder:
		if verified {
			return 95
		}
		return 50
	case model.SubmethodNameReorderDropMiddle, model.SubmethodSuffixRemoved:
		if verified {
			return 90
		}
		return 40
	case model.SubmethodFirstMiddleOnly:
		return 20
	default:
		return 0
	}
}

// textDistanceConfidence maps a distance category to its fixed confidence.
func textDistanceConfidence(cat model.DistanceCategory) int {
	switch cat {
	case model.DistanceHigh:
		return 95
	case model.DistanceMedium:
		return 85
	case model.DistanceLow:
		return 70
	default: // TOO_FAR downgrades to Name Only
		return 75
	}
}

// textNameOnlyConfidence is the fixed confidence for a text match with only
// a name hit (no company hit, or a too-far company hit).
const textNameOnlyConfidence = 75
