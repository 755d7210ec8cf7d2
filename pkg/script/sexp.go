package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/xylemcad/xylem/pkg/graph"
)

// toSexp converts a bucket value into its zygomys representation.
func toSexp(env *zygo.Zlisp, v graph.Value) (zygo.Sexp, error) {
	switch x := v.(type) {
	case nil:
		return zygo.SexpNull, nil
	case int:
		return &zygo.SexpInt{Val: int64(x)}, nil
	case int64:
		return &zygo.SexpInt{Val: x}, nil
	case float64:
		return &zygo.SexpFloat{Val: x}, nil
	case string:
		return &zygo.SexpStr{S: x}, nil
	case bool:
		return &zygo.SexpBool{Val: x}, nil
	case graph.Vec3:
		elems := []zygo.Sexp{
			&zygo.SexpFloat{Val: x.X},
			&zygo.SexpFloat{Val: x.Y},
			&zygo.SexpFloat{Val: x.Z},
		}
		return env.NewSexpArray(elems), nil
	case graph.Bucket:
		return toSexpArray(env, x)
	case []graph.Value:
		return toSexpArray(env, x)
	default:
		return zygo.SexpNull, fmt.Errorf("cannot pass %T into a script", v)
	}
}

// toSexpArray converts a bucket into a zygomys array.
func toSexpArray(env *zygo.Zlisp, b graph.Bucket) (zygo.Sexp, error) {
	elems := make([]zygo.Sexp, 0, len(b))
	for _, v := range b {
		s, err := toSexp(env, v)
		if err != nil {
			return zygo.SexpNull, err
		}
		elems = append(elems, s)
	}
	return env.NewSexpArray(elems), nil
}

// fromSexp converts a zygomys value back into a bucket value.
func fromSexp(s zygo.Sexp) (graph.Value, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpStr:
		return v.S, nil
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpArray:
		out := make(graph.Bucket, 0, len(v.Val))
		for _, el := range v.Val {
			gv, err := fromSexp(el)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case *zygo.SexpPair:
		arr, err := zygo.ListToArray(v)
		if err != nil {
			return nil, err
		}
		out := make(graph.Bucket, 0, len(arr))
		for _, el := range arr {
			gv, err := fromSexp(el)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot return %s from a script", v.SexpString(nil))
	default:
		return nil, fmt.Errorf("cannot return %T from a script", s)
	}
}

// toBucket converts the final script result into an output bucket.
// A top-level array or list becomes the bucket element-wise; a scalar
// becomes a single-value bucket; null becomes an empty bucket.
func toBucket(s zygo.Sexp) (graph.Bucket, error) {
	if s == nil {
		return graph.Bucket{}, nil
	}
	v, err := fromSexp(s)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return graph.Bucket{}, nil
	case graph.Bucket:
		return x, nil
	default:
		return graph.Bucket{x}, nil
	}
}
