package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// User is one user's displayable attributes as received from the server.
// Fields are not validated: each may arrive as any JSON scalar and is shown
// as received.
type User struct {
	ID        Scalar `json:"id"`
	FirstName Scalar `json:"firstName"`
	LastName  Scalar `json:"lastName"`
	Age       Scalar `json:"age"`
	Email     Scalar `json:"email"`
}

// Scalar holds a JSON string, number or boolean in its textual form. Numbers
// keep their literal spelling, so 30.0 stays "30.0".
type Scalar struct {
	raw    string
	quoted bool
}

// Int builds a Scalar that marshals as a JSON number.
func Int(n int64) Scalar {
	return Scalar{raw: strconv.FormatInt(n, 10)}
}

// Text builds a Scalar that marshals as a JSON string.
func Text(s string) Scalar {
	return Scalar{raw: s, quoted: true}
}

// String returns the value as it should be displayed.
func (s Scalar) String() string {
	return s.raw
}

// IsZero reports whether the value was absent or null.
func (s Scalar) IsZero() bool {
	return s.raw == "" && !s.quoted
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Scalar{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("decode scalar: %w", err)
		}
		*s = Text(str)
		return nil
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode scalar: %w", err)
		}
		*s = Scalar{raw: n.String()}
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*s = Scalar{raw: string(data)}
		return nil
	}
	return fmt.Errorf("decode scalar: unsupported value %s", data)
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.quoted {
		return json.Marshal(s.raw)
	}
	if s.raw == "" {
		return []byte("null"), nil
	}
	return []byte(s.raw), nil
}

// Columns is the fixed column order of the user table.
var Columns = []string{"ID", "First Name", "Last Name", "Age", "Email"}

// Cells returns the display values of u in Columns order.
func (u User) Cells() []string {
	return []string{
		u.ID.String(),
		u.FirstName.String(),
		u.LastName.String(),
		u.Age.String(),
		u.Email.String(),
	}
}
