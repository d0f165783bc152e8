package validator

// contextWindow extracts the raw text within radius bytes either side of
// [start, end), clipped to document boundaries.
func contextWindow(raw string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(raw) {
		hi = len(raw)
	}
	return raw[lo:hi]
}

// ValidateName gates a name hit by its ambiguity class: VERY_SHORT and
// MEDIUM classes additionally require the surrounding context not look like
// an encoded binary blob. Every name class is subject to the
// adjacent-name-token gate regardless of length.
func ValidateName(raw string, start, end int, first, last string) (bool, string) {
	class := ClassifyName(first, last)
	ctx50 := contextWindow(raw, start, end, 50)

	switch class {
	case NameVeryShort:
		if !SpaceBoundaryOK(raw, start, end) {
			return false, "very-short name not exactly space-delimited"
		}
		if !EnglishContextOK(ctx50, 5) {
			return false, "very-short name lacks sufficient English context"
		}
		if !EncodedRegionOK(contextWindow(raw, start, end, 100)) {
			return false, "very-short name context looks encoded"
		}
	case NameShort:
		if !SpaceBoundaryOK(raw, start, end) {
			return false, "short name not exactly space-delimited"
		}
		if !EnglishContextOK(ctx50, 3) {
			return false, "short name lacks sufficient English context"
		}
	case NameMedium:
		if !SpaceBoundaryOK(raw, start, end) {
			return false, "medium name not exactly space-delimited"
		}
		if !EnglishContextOK(ctx50, 2) {
			return false, "medium name lacks sufficient English context"
		}
		if !EncodedRegionOK(contextWindow(raw, start, end, 100)) {
			return false, "medium name context looks encoded"
		}
	case NameNormal:
		// Word-boundary is already enforced by the pattern engine's
		// boundary prerequisite; no additional context gate required.
	}

	if !AdjacentNameTokenOK(raw, start, end) {
		return false, "name appears embedded in a longer capitalized name"
	}
	return true, ""
}

// ValidateCompany gates a company hit by its ambiguity class, mirroring the
// name table: very-short and single-word roots require an encoded-region
// check on top of the English-context minimum.
func ValidateCompany(raw string, start, end int, root string, wordCount int) (bool, string) {
	class := ClassifyCompany(root, wordCount)
	ctx50 := contextWindow(raw, start, end, 50)

	switch class {
	case CompanyVeryShort:
		if !SpaceBoundaryOK(raw, start, end) {
			return false, "very-short company root not exactly space-delimited"
		}
		if !EnglishContextOK(ctx50, 5) {
			return false, "very-short company root lacks sufficient English context"
		}
		if !EncodedRegionOK(contextWindow(raw, start, end, 100)) {
			return false, "very-short company root context looks encoded"
		}
	case CompanyShort:
		if !SpaceBoundaryOK(raw, start, end) {
			return false, "short company root not exactly space-delimited"
		}
		if !EnglishContextOK(ctx50, 3) {
			return false, "short company root lacks sufficient English context"
		}
	case CompanySingleWord:
		if !EnglishContextOK(ctx50, 2) {
			return false, "single-word company root lacks sufficient English context"
		}
		if !EncodedRegionOK(contextWindow(raw, start, end, 100)) {
			return false, "single-word company root context looks encoded"
		}
	case CompanyMultiWord:
		// Word-boundary already enforced upstream.
	}

	return true, ""
}
