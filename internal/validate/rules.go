package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// Check validates a single attribute value. The returned error message is
// reported to the caller as the field diagnostic.
type Check func(v any) error

const dateLayout = "2006-01-02"

// values runs the tag-based per-value checks. Attribute-set shape is checked
// by hand in Validator, since payloads are maps whose exact key count matters.
var values = newValues()

func newValues() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("industry", func(fl validator.FieldLevel) bool {
		return domain.Industry(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("wordchars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r) {
				return false
			}
		}
		return true
	})
	return v
}

// failedTag is the first tag a validator.Var call rejected, or "" if err is
// not a validation failure.
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

// Text accepts a string of min..max characters made only of letters, digits
// and spaces, with no leading or trailing whitespace. A string made only of
// digits is rejected.
func Text(minLen, maxLen int) Check {
	tag := fmt.Sprintf("min=%d,max=%d,wordchars", minLen, maxLen)
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if err := values.Var(s, tag); err != nil {
			if failedTag(err) == "wordchars" {
				return errors.New("must contain only letters, digits and spaces")
			}
			return fmt.Errorf("must be between %d and %d characters", minLen, maxLen)
		}
		if strings.TrimSpace(s) != s {
			return errors.New("must not have leading or trailing whitespace")
		}
		if values.Var(s, "numeric") == nil {
			return errors.New("must not be a number")
		}
		return nil
	}
}

// Budget accepts a positive integer of at most 10 digits.
func Budget(v any) error {
	num, ok := v.(json.Number)
	if !ok || strings.ContainsAny(num.String(), ".eE") {
		return errors.New("must be an integer")
	}
	n, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return errors.New("must be an integer")
	}
	switch failedTag(values.Var(n, "min=1,max=9999999999")) {
	case "":
		return nil
	case "min":
		return errors.New("must be at least 1")
	default:
		return errors.New("must have at most 10 digits")
	}
}

// Date accepts a YYYY-MM-DD calendar date.
func Date(v any) error {
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if len(s) != len(dateLayout) || values.Var(s, "datetime="+dateLayout) != nil {
		return errors.New("must be a date in YYYY-MM-DD form")
	}
	return nil
}

// DateOrder requires start to fall strictly before end. Both are fixed-width
// ISO dates, so string comparison orders them.
func DateOrder(start, end string) error {
	if start >= end {
		return fmt.Errorf("start_date %s must be before end_date %s", start, end)
	}
	return nil
}

// IndustryName accepts one of the fixed industry names, matched exactly.
func IndustryName(v any) error {
	s, ok := v.(string)
	if !ok || values.Var(s, "industry") != nil {
		return errors.New("must be a known industry")
	}
	return nil
}

// IDRef accepts null or an object holding exactly an integer-coercible id.
func IDRef(v any) error {
	if v == nil {
		return nil
	}
	_, err := refID(v, "id")
	return err
}

// ProjectRef accepts null or an object holding exactly an integer-coercible
// id and a name that passes the project name rule.
func ProjectRef(v any) error {
	if v == nil {
		return nil
	}
	if _, err := refID(v, "id", "name"); err != nil {
		return err
	}
	if err := Text(3, 30)(v.(map[string]any)["name"]); err != nil {
		return fmt.Errorf("name %w", err)
	}
	return nil
}

// IDRefList accepts a possibly empty array of objects each holding exactly an
// integer-coercible id.
func IDRefList(v any) error {
	items, ok := v.([]any)
	if !ok {
		return errors.New("must be an array")
	}
	for i, item := range items {
		if _, err := refID(item, "id"); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// refID checks that v is an object with exactly the given keys and returns
// its coerced id.
func refID(v any, keys ...string) (int64, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return 0, errors.New("must be an object")
	}
	if len(obj) != len(keys) {
		return 0, fmt.Errorf("must have exactly the attributes %s", strings.Join(keys, ", "))
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return 0, fmt.Errorf("must have exactly the attributes %s", strings.Join(keys, ", "))
		}
	}
	id, ok := CoerceID(obj["id"])
	if !ok {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}

// CoerceID converts an integer JSON number or a decimal string to an id.
func CoerceID(v any) (int64, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = t
	default:
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
