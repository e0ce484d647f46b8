package appointment

// Catalog is the fixed set of bookable same-day times, in display order.
var Catalog = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

func InCatalog(t string) bool {
	for _, s := range Catalog {
		if s == t {
			return true
		}
	}
	return false
}

// RemainingSlots returns the catalog minus the taken times, preserving
// catalog order.
func RemainingSlots(taken []string) []string {
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		used[t] = struct{}{}
	}

	out := make([]string, 0, len(Catalog))
	for _, s := range Catalog {
		if _, ok := used[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
