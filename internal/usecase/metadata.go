package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

var scholarshipIDKeys = []string{"scholarship_ids", "scholarships_ids", "scholarship_id", "selected_scholarship_id"}

// scholarshipIDsFromMetadata collects scholarship ids from the claim metadata.
// Arrays, comma separated strings and single ids are accepted; order is kept and
// duplicates dropped.
func scholarshipIDsFromMetadata(m map[string]any) []string {
	var ids []string
	seen := map[string]struct{}{}
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}

	for _, key := range scholarshipIDKeys {
		switch v := m[key].(type) {
		case string:
			for _, part := range strings.Split(v, ",") {
				add(part)
			}
		case []string:
			for _, s := range v {
				add(s)
			}
		case []any:
			for _, item := range v {
				if item == nil {
					continue
				}
				add(fmt.Sprintf("%v", item))
			}
		}
	}
	return ids
}

// amountFromMetadata reads an optional fee amount carried by proof-scoped verdicts.
func amountFromMetadata(m map[string]any) float64 {
	for _, key := range []string{"amount", "fee_amount"} {
		switch v := m[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func stringFromMetadata(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func copyMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
