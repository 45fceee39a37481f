package triple

import (
	"slices"
)

// Deduplicate removes duplicate triples and sorts the result. If
// duplicates have different record IDs, the smallest one is kept, so the
// result does not depend on the order of the input. The input slice is
// not modified.
func Deduplicate(ts []Triple) []Triple {
	if len(ts) == 0 {
		return nil
	}

	seen := make(map[string]int, len(ts))
	res := make([]Triple, 0, len(ts))
	for _, t := range ts {
		k := t.Key()
		if i, ok := seen[k]; ok {
			if t.RecordID < res[i].RecordID {
				res[i].RecordID = t.RecordID
			}
			continue
		}
		seen[k] = len(res)
		res = append(res, t)
	}

	slices.SortStableFunc(res, Compare)
	return res
}

// FilterPredicates keeps triples with one of the given predicates.
// Empty predicates list keeps everything.
func FilterPredicates(ts []Triple, predicates []string) []Triple {
	if len(predicates) == 0 {
		return ts
	}
	res := make([]Triple, 0, len(ts))
	for _, t := range ts {
		if slices.Contains(predicates, t.Predicate) {
			res = append(res, t)
		}
	}
	return res
}
