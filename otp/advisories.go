package otp

import "sort"

// adviseUnchecked lists the extra parameter names that bypassed
// validation, one advisory per name in stable order. Non-fatal; the
// parameters are passed to the router verbatim.
func adviseUnchecked(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}
	names := make([]string, 0, len(extra))
	for k := range extra {
		names = append(names, k)
	}
	sort.Strings(names)
	advisories := make([]string, len(names))
	for i, k := range names {
		advisories[i] = "parameter " + k + " was passed through without validation"
	}
	return advisories
}
