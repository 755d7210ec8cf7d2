package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/graph"
)

// ToFloat extracts a float64 from a bucket value.
func ToFloat(v graph.Value) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// ToInt extracts an int from a bucket value. Floats are truncated.
func ToInt(v graph.Value) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// ToString extracts a string from a bucket value. Numbers stringify.
func ToString(v graph.Value) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64, int, int64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

// ToFloats converts a whole bucket to floats.
func ToFloats(b graph.Bucket) ([]float64, error) {
	out := make([]float64, 0, len(b))
	for i, v := range b {
		f, err := ToFloat(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// broadcastLen returns the common length for element-wise operations over
// the given operand lengths. Length-1 operands broadcast against longer
// ones; any other mismatch is an error.
func broadcastLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		if l == n || l == 1 {
			continue
		}
		if n == 1 {
			n = l
			continue
		}
		return 0, fmt.Errorf("input lengths %v do not broadcast", lens)
	}
	return n, nil
}

// pick returns the i-th operand, holding a length-1 operand fixed.
func pick(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}

// channelID turns the first value of a name bucket into a flat channel
// key. Numbers and strings share one keyspace, so the numeric text "1"
// and the value 1.0 address the same channel.
func channelID(b graph.Bucket) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("channel name input is empty")
	}
	return fmt.Sprint(b[0]), nil
}
