package schema

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/lmorrow/inkwell/internal/domain"
)

// ValidateBook validates one raw books record and returns the
// normalized entry. The error is a *Failure listing every violation,
// or wraps ErrMalformedInput when raw is not a key/value record.
func ValidateBook(raw any) (domain.BookEntry, error) {
	rec, err := validateRecord(domain.CollectionBooks, raw)
	if err != nil {
		return domain.BookEntry{}, err
	}
	return bindBook(rec), nil
}

// ValidateNews validates one raw news record and returns the
// normalized entry.
func ValidateNews(raw any) (domain.NewsEntry, error) {
	rec, err := validateRecord(domain.CollectionNews, raw)
	if err != nil {
		return domain.NewsEntry{}, err
	}
	return bindNews(rec), nil
}

// validateRecord walks the collection's schema over raw, collecting
// every violation, then applies defaults to the coerced output. A
// record either normalizes fully or not at all.
func validateRecord(c domain.Collection, raw any) (map[string]any, error) {
	fields, ok := fieldsFor(c)
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", c)
	}

	m, ok := asRecord(raw)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedInput, raw)
	}

	out, violations := walk(fields, m, "")
	if len(violations) > 0 {
		return nil, &Failure{Collection: c, Violations: violations}
	}

	applyDefaults(fields, out)
	return out, nil
}

// asRecord accepts the map shapes front-matter decoders produce.
func asRecord(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func walk(fields []Field, raw map[string]any, prefix string) (map[string]any, []Violation) {
	out := make(map[string]any, len(fields))
	var violations []Violation

	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		val, present := raw[f.Name]
		if !present || val == nil {
			if f.Required {
				violations = append(violations, Violation{
					Path:   path,
					Code:   CodeMissingRequired,
					Reason: "required field is missing",
				})
			}
			continue
		}

		coerced, vs := checkField(f, path, val)
		if len(vs) > 0 {
			violations = append(violations, vs...)
			continue
		}
		out[f.Name] = coerced
	}

	return out, violations
}

func checkField(f Field, path string, val any) (any, []Violation) {
	switch f.Kind {
	case Text:
		s, ok := val.(string)
		if !ok {
			return nil, mismatch(path, "expected a string", val)
		}
		if f.NonEmpty && s == "" {
			return nil, []Violation{{Path: path, Code: CodeTypeMismatch, Reason: "non-empty string required"}}
		}
		return s, nil

	case Bool:
		b, ok := val.(bool)
		if !ok {
			return nil, mismatch(path, "expected a boolean", val)
		}
		return b, nil

	case Enum:
		s, ok := val.(string)
		if !ok {
			return nil, mismatch(path, "expected a string", val)
		}
		if !slices.Contains(f.Values, s) {
			return nil, []Violation{{
				Path:   path,
				Code:   CodeEnumViolation,
				Reason: fmt.Sprintf("%q is not one of: %s", s, strings.Join(f.Values, ", ")),
			}}
		}
		return s, nil

	case Date:
		switch v := val.(type) {
		case string:
			d, err := domain.ParseDate(v)
			if err != nil {
				return nil, []Violation{{Path: path, Code: CodeDateParse, Reason: err.Error()}}
			}
			return d, nil
		case time.Time:
			// YAML decoders hand an unquoted date over already
			// parsed. Its own location keeps the literal calendar
			// digits.
			return domain.DateOf(v), nil
		default:
			return nil, mismatch(path, "expected a date", val)
		}

	case PositiveInt:
		n, integral, numeric := asInt(val)
		if !numeric {
			return nil, mismatch(path, "expected a number", val)
		}
		if !integral {
			return nil, []Violation{{Path: path, Code: CodeNumberConstraint, Reason: "must be a whole number"}}
		}
		if n <= 0 {
			return nil, []Violation{{Path: path, Code: CodeNumberConstraint, Reason: "must be greater than zero"}}
		}
		return n, nil

	case URLStrict:
		s, ok := val.(string)
		if !ok {
			return nil, mismatch(path, "expected a URL string", val)
		}
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, []Violation{{
				Path:   path,
				Code:   CodeURLSyntax,
				Reason: fmt.Sprintf("%q is not an absolute URL", s),
			}}
		}
		return s, nil

	case List:
		return checkList(f, path, val)

	default:
		return nil, []Violation{{Path: path, Code: CodeTypeMismatch, Reason: "unsupported field kind"}}
	}
}

func checkList(f Field, path string, val any) (any, []Violation) {
	items, ok := asList(val)
	if !ok {
		return nil, mismatch(path, "expected a list", val)
	}

	out := make([]map[string]any, 0, len(items))
	var violations []Violation
	for i, item := range items {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		elemRaw, ok := asRecord(item)
		if !ok {
			violations = append(violations, mismatch(elemPath, "expected a key/value object", item)...)
			continue
		}
		elem, vs := walk(f.Elem, elemRaw, elemPath)
		if len(vs) > 0 {
			violations = append(violations, vs...)
			continue
		}
		out = append(out, elem)
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return out, nil
}

func asList(val any) ([]any, bool) {
	switch items := val.(type) {
	case []any:
		return items, true
	case []map[string]any:
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// asInt reports the value as an int when it is numeric and integral.
// Integral floats (e.g. 2.0 from a JSON decoder) count as whole
// numbers; 2.5 does not.
func asInt(val any) (n int, integral, numeric bool) {
	switch v := val.(type) {
	case int:
		return v, true, true
	case int64:
		return int(v), true, true
	case uint64:
		if v > math.MaxInt {
			return 0, false, true
		}
		return int(v), true, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false, true
		}
		return int(v), true, true
	default:
		return 0, false, false
	}
}

func mismatch(path, want string, got any) []Violation {
	return []Violation{{
		Path:   path,
		Code:   CodeTypeMismatch,
		Reason: fmt.Sprintf("%s, got %T", want, got),
	}}
}
