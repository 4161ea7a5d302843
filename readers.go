package gopt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Str reads the raw argument unchanged.
func Str() ParseFunc {
	return func(val string) (any, error) {
		return val, nil
	}
}

// Int reads a decimal integer argument.
func Int() ParseFunc {
	return func(val string) (any, error) {
		return strconv.ParseInt(val, 10, 64)
	}
}

// Uint reads a decimal unsigned integer argument.
func Uint() ParseFunc {
	return func(val string) (any, error) {
		return strconv.ParseUint(val, 10, 64)
	}
}

// Float reads a floating point argument.
func Float() ParseFunc {
	return func(val string) (any, error) {
		return strconv.ParseFloat(val, 64)
	}
}

// Bool reads a boolean argument.
func Bool() ParseFunc {
	return func(val string) (any, error) {
		return strconv.ParseBool(val)
	}
}

// Duration reads a time duration argument like "1h30m".
func Duration() ParseFunc {
	return func(val string) (any, error) {
		return time.ParseDuration(val)
	}
}

// Time reads a timestamp argument in the provided layout.
func Time(layout string) ParseFunc {
	return func(val string) (any, error) {
		return time.Parse(layout, val)
	}
}

// Enum reads one of the allowed literal values.
func Enum(vals ...string) ParseFunc {
	if len(vals) == 0 {
		panic("enum reader needs at least one value")
	}
	return func(val string) (any, error) {
		for _, v := range vals {
			if v == val {
				return val, nil
			}
		}
		return nil, fmt.Errorf("invalid value %q can't be parsed as one of %s", val, strings.Join(vals, ", "))
	}
}

// List reads a braced comma separated list with every element parsed by
// elem, so "{1,2,3}" under an integer element yields three values.
func List(elem ParseFunc) ParseFunc {
	return func(val string) (any, error) {
		if val == "" || val == "{}" {
			return []any{}, nil
		}
		if !strings.HasPrefix(val, "{") || !strings.HasSuffix(val, "}") {
			return nil, fmt.Errorf("invalid value %q can't be parsed as a list", val)
		}
		nval := val[1 : len(val)-1]
		if strings.TrimSpace(nval) == "" {
			return []any{}, nil
		}
		pvals := splitb(nval, ",")
		// Allow a trailing comma in list values.
		if l := len(pvals); l > 0 && strings.TrimSpace(pvals[l-1]) == "" {
			pvals = pvals[:l-1]
		}
		r := make([]any, 0, len(pvals))
		for _, pval := range pvals {
			v, err := elem(strings.TrimSpace(pval))
			if err != nil {
				return nil, err
			}
			r = append(r, v)
		}
		return r, nil
	}
}

// KV reads a braced comma separated list of colon separated pairs, so
// "{a:1,b:2}" under string and integer readers yields a two entry map.
func KV(key, val ParseFunc) ParseFunc {
	return func(raw string) (any, error) {
		if raw == "" || raw == "{}" {
			return map[any]any{}, nil
		}
		if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
			return nil, fmt.Errorf("invalid value %q can't be parsed as a map", raw)
		}
		nval := raw[1 : len(raw)-1]
		if strings.TrimSpace(nval) == "" {
			return map[any]any{}, nil
		}
		pairs := splitb(nval, ",")
		// Allow a trailing comma in map values.
		if l := len(pairs); l > 0 && strings.TrimSpace(pairs[l-1]) == "" {
			pairs = pairs[:l-1]
		}
		mp := make(map[any]any, len(pairs))
		for _, pair := range pairs {
			p := strings.SplitN(pair, ":", 2)
			if len(p) != 2 {
				return nil, fmt.Errorf("invalid value %q can't be parsed as a map", raw)
			}
			k, err := key(strings.TrimSpace(p[0]))
			if err != nil {
				return nil, err
			}
			v, err := val(strings.TrimSpace(p[1]))
			if err != nil {
				return nil, err
			}
			mp[k] = v
		}
		return mp, nil
	}
}

// splitb splits s on by only where the braces seen so far are balanced,
// keeping nested braced values intact.
func splitb(s, by string) []string {
	tokens := strings.Split(s, by)
	result := make([]string, 0, len(tokens))
	var accum string
	for _, t := range tokens {
		accum += t
		if strings.Count(accum, "{") != strings.Count(accum, "}") {
			accum += by
			continue
		}
		result = append(result, accum)
		accum = ""
	}
	return result
}
