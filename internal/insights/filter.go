package insights

// Filter selects which insight types are visible in the panel.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterLeaky   Filter = "leaky-bucket"
	FilterGem     Filter = "hidden-gem"
	FilterAuction Filter = "auction"
)

// Filters lists the selectable filters in panel cycling order.
var Filters = []Filter{FilterAll, FilterLeaky, FilterGem, FilterAuction}

// Matches reports whether an insight type passes this filter. The auction
// filter matches both soft- and hot-auction insights.
func (f Filter) Matches(t InsightType) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterLeaky:
		return t == TypeLeakyBucket
	case FilterGem:
		return t == TypeHiddenGem
	case FilterAuction:
		return t == TypeSoftAuction || t == TypeHotAuction
	}
	return false
}

// Apply returns the insights visible under f, preserving order.
func (f Filter) Apply(list []Insight) []Insight {
	if f == FilterAll || f == "" {
		return list
	}
	var out []Insight
	for _, in := range list {
		if f.Matches(in.Type) {
			out = append(out, in)
		}
	}
	return out
}
