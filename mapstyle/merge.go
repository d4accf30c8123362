package mapstyle

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidConfigurationShape is returned when a known section is given a
// value that is not a string-keyed map.
var ErrInvalidConfigurationShape = errors.New("invalid configuration shape")

// Merge overlays cfg onto the defaults and returns a new configuration.
//
// Every default section is merged one level deep: options set in cfg win,
// missing options keep their default and unknown options are kept. The
// background scalar is replaced when present. Keys unknown to the defaults
// are copied as-is. cfg is never modified.
func Merge(cfg Config) (Config, error) {
	defaults := DefaultConfig()
	merged := make(Config, len(defaults)+len(cfg))

	for key, value := range cfg {
		if _, known := defaults[key]; !known {
			merged[key] = cloneValue(value)
		}
	}

	for key, def := range defaults {
		override, present := cfg[key]

		defSection, isSection := def.(Section)
		if !isSection {
			if present {
				merged[key] = cloneValue(override)
			} else {
				merged[key] = def
			}
			continue
		}

		if !present || override == nil {
			merged[key] = defSection
			continue
		}

		callerSection, err := asSection(override)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", key, err)
		}

		section := make(Section, len(defSection)+len(callerSection))
		for opt, v := range defSection {
			section[opt] = v
		}
		for opt, v := range callerSection {
			section[opt] = cloneValue(v)
		}
		merged[key] = section
	}

	return merged, nil
}

// asSection views a caller-supplied section value as a Section without
// copying its values.
func asSection(value any) (Section, error) {
	switch v := value.(type) {
	case Section:
		return v, nil
	case map[string]any:
		return Section(v), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: expected a map of options, got %T", ErrInvalidConfigurationShape, value)
	}

	section := make(Section, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		section[iter.Key().String()] = iter.Value().Interface()
	}
	return section, nil
}

// cloneValue copies the slice and map types a configuration usually holds so
// the merged tree shares no mutable state with the caller's input.
func cloneValue(value any) any {
	switch v := value.(type) {
	case []float64:
		return append([]float64(nil), v...)
	case []int:
		return append([]int(nil), v...)
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = cloneValue(v[i])
		}
		return out
	case Section:
		out := make(Section, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
