package catalog

import "errors"

// ActiveCodes returns the set of active template codes for a category. A
// missing category yields an empty set, not an error.
func ActiveCodes(category string) (map[string]bool, error) {
	rec, err := GetCategory(category)
	if errors.Is(err, ErrNotFound) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	codes := make(map[string]bool, len(rec.Templates))
	for _, t := range rec.Templates {
		if t.IsActive {
			codes[t.Code] = true
		}
	}
	return codes, nil
}

// ValidateCodes partitions candidates into codes that match an active item
// in the category and codes that do not. Both partitions preserve the
// candidate order. Deterministic for a fixed catalog state; an unknown
// category makes every candidate invalid.
func ValidateCodes(category string, candidates []string) (valid, invalid []string, err error) {
	valid = []string{}
	invalid = []string{}
	if len(candidates) == 0 {
		return valid, invalid, nil
	}

	active, err := ActiveCodes(category)
	if err != nil {
		return nil, nil, err
	}
	for _, code := range candidates {
		if active[code] {
			valid = append(valid, code)
		} else {
			invalid = append(invalid, code)
		}
	}
	return valid, invalid, nil
}
