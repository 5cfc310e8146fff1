package employees

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// The employee form posts every field as a string, so the wire types below
// accept numbers or numeric strings and treat "" like null.

// ID is an employee identifier. Zero means absent.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	raw, blank, err := scalarText(data)
	if err != nil {
		return err
	}
	if blank {
		*id = 0
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid employee id %q", raw)
	}
	*id = ID(parsed)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// NullInt is an optional integer column.
type NullInt struct {
	Int64 int64
	Valid bool
}

func NewNullInt(value int64) NullInt {
	return NullInt{Int64: value, Valid: true}
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Int64, 10)), nil
}

func (n *NullInt) UnmarshalJSON(data []byte) error {
	raw, blank, err := scalarText(data)
	if err != nil {
		return err
	}
	if blank {
		*n = NullInt{}
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*n = NewNullInt(parsed)
	return nil
}

func (n NullInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	value := n.Int64
	return &value
}

func nullIntFromPtr(value *int64) NullInt {
	if value == nil {
		return NullInt{}
	}
	return NewNullInt(*value)
}

// NullDecimal is an optional NUMERIC column.
type NullDecimal struct {
	decimal.NullDecimal
}

func NewNullDecimal(value decimal.Decimal) NullDecimal {
	return NullDecimal{decimal.NewNullDecimal(value)}
}

func (d *NullDecimal) UnmarshalJSON(data []byte) error {
	raw, blank, err := scalarText(data)
	if err != nil {
		return err
	}
	if blank {
		*d = NullDecimal{}
		return nil
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", raw)
	}
	*d = NewNullDecimal(parsed)
	return nil
}

// Text is the plain decimal form, or "" when absent.
func (d NullDecimal) Text() string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func (d NullDecimal) textPtr() *string {
	if !d.Valid {
		return nil
	}
	value := d.Decimal.String()
	return &value
}

func nullDecimalFromText(value *string) (NullDecimal, error) {
	if value == nil {
		return NullDecimal{}, nil
	}
	parsed, err := decimal.NewFromString(*value)
	if err != nil {
		return NullDecimal{}, err
	}
	return NewNullDecimal(parsed), nil
}

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or RFC3339.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, nil
	}
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return Date{parsed}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", value)
	}
	return NewDate(parsed.Year(), parsed.Month(), parsed.Day()), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw, blank, err := scalarText(data)
	if err != nil {
		return err
	}
	if blank {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// scalarText unwraps a JSON string or number into its text. blank reports
// null or an all-space string.
func scalarText(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}
	if data[0] == '{' || data[0] == '[' || data[0] == 't' || data[0] == 'f' {
		return "", false, fmt.Errorf("expected a number or string, got %s", data)
	}
	return string(data), false, nil
}
