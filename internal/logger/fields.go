package logger

// Fields is the structured context attached to log lines.
type Fields map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

// deepClone copies nested maps and slices so later mutation by the caller
// cannot change what gets rendered.
func deepClone(v any) any {
	switch t := v.(type) {
	case Fields:
		out := make(Fields, len(t))
		for k, val := range t {
			out[k] = deepClone(val)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepClone(val)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepClone(val)
		}

		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

func toFields(v any) Fields {
	switch t := v.(type) {
	case nil:
		return nil
	case Fields:
		cloned, _ := deepClone(t).(Fields)
		return cloned
	case map[string]any:
		cloned, _ := deepClone(t).(map[string]any)
		return Fields(cloned)
	default:
		return Fields{"metadata": deepClone(v)}
	}
}
