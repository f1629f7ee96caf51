package checks

import (
	"math"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/registry"
)

// Type names of the stock hierarchy. Container is the root; a check
// registered against Container runs on every object.
const (
	TypeContainer        = "Container"
	TypeGroup            = "Group"
	TypeDataset          = "Dataset"
	TypeSeries           = "Series"
	TypeElectricalSeries = "ElectricalSeries"
	TypeTable            = "Table"
)

func init() {
	s := registry.Default.Schema()
	s.MustRegisterType(TypeGroup, TypeContainer)
	s.MustRegisterType(TypeDataset, TypeContainer)
	s.MustRegisterType(TypeSeries, TypeDataset)
	s.MustRegisterType(TypeElectricalSeries, TypeSeries)
	s.MustRegisterType(TypeTable, TypeDataset)
}

// attrString returns a string attribute, with ok reporting presence.
func attrString(n graph.Node, key string) (string, bool) {
	v, ok := graph.AttrsOf(n)[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// attrFloat returns a numeric attribute as float64.
func attrFloat(n graph.Node, key string) (float64, bool) {
	v, ok := graph.AttrsOf(n)[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// attrFloats returns a numeric array attribute as []float64. Parsers may
// hand over []float64, []int, or []any of either.
func attrFloats(n graph.Node, key string) ([]float64, bool) {
	v, ok := graph.AttrsOf(n)[key]
	if !ok {
		return nil, false
	}
	switch vals := v.(type) {
	case []float64:
		return vals, true
	case []int:
		out := make([]float64, len(vals))
		for i, x := range vals {
			out[i] = float64(x)
		}
		return out, true
	case []any:
		out := make([]float64, len(vals))
		for i, x := range vals {
			f, ok := toFloat(x)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

// attrInts returns an integer array attribute, used for dataset shapes.
func attrInts(n graph.Node, key string) ([]int, bool) {
	v, ok := graph.AttrsOf(n)[key]
	if !ok {
		return nil, false
	}
	switch vals := v.(type) {
	case []int:
		return vals, true
	case []any:
		out := make([]int, len(vals))
		for i, x := range vals {
			f, ok := toFloat(x)
			if !ok || f != math.Trunc(f) {
				return nil, false
			}
			out[i] = int(f)
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// isRegular reports whether consecutive differences of the series are all
// equal after rounding to the given number of decimals.
func isRegular(series []float64, decimals int) bool {
	if len(series) < 2 {
		return false
	}
	scale := math.Pow10(decimals)
	round := func(x float64) float64 { return math.Round(x*scale) / scale }
	first := round(series[1] - series[0])
	for i := 2; i < len(series); i++ {
		if round(series[i]-series[i-1]) != first {
			return false
		}
	}
	return true
}

// isAscending reports whether the series is strictly increasing.
func isAscending(series []float64) bool {
	for i := 1; i < len(series); i++ {
		if series[i] <= series[i-1] {
			return false
		}
	}
	return true
}

// uniqueValues returns the distinct values of the series in first-seen order.
func uniqueValues(series []float64) []float64 {
	seen := make(map[float64]struct{}, len(series))
	var out []float64
	for _, v := range series {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
