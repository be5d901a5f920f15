package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want string
		zero bool
	}{
		{`1`, "1", false},
		{`42`, "42", false},
		{`-7`, "-7", false},
		{`30.0`, "30.0", false},
		{`3e1`, "3e1", false},
		{`"abc-123"`, "abc-123", false},
		{`""`, "", false},
		{`null`, "", true},
		{`true`, "true", false},
	}
	for _, tt := range tests {
		var s Scalar
		err := json.Unmarshal([]byte(tt.in), &s)
		require.NoError(t, err, "input %s", tt.in)
		assert.Equal(t, tt.want, s.String(), "input %s", tt.in)
		assert.Equal(t, tt.zero, s.IsZero(), "input %s", tt.in)
	}
}

func TestScalarUnmarshalRejectsObjects(t *testing.T) {
	var s Scalar
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &s))
}

func TestScalarKeepsStringness(t *testing.T) {
	out, err := json.Marshal(Text("7"))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(out))

	out, err = json.Marshal(Int(7))
	require.NoError(t, err)
	assert.Equal(t, `7`, string(out))

	out, err = json.Marshal(Scalar{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestUserDecode(t *testing.T) {
	body := `{"id":1,"firstName":"Ann","lastName":"Lee","age":30,"email":"a@x.com"}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	assert.Equal(t, []string{"1", "Ann", "Lee", "30", "a@x.com"}, u.Cells())
}

func TestUserDecodeLooseFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "float age",
			body: `{"id":1,"firstName":"Ann","lastName":"Lee","age":30.0,"email":"a@x.com"}`,
			want: []string{"1", "Ann", "Lee", "30.0", "a@x.com"},
		},
		{
			name: "string age",
			body: `{"id":1,"firstName":"Ann","lastName":"Lee","age":"30","email":"a@x.com"}`,
			want: []string{"1", "Ann", "Lee", "30", "a@x.com"},
		},
		{
			name: "numeric first name",
			body: `{"id":"u-1","firstName":7,"lastName":"Lee","age":30,"email":"a@x.com"}`,
			want: []string{"u-1", "7", "Lee", "30", "a@x.com"},
		},
		{
			name: "missing fields",
			body: `{"id":2}`,
			want: []string{"2", "", "", "", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.want, u.Cells())
		})
	}
}

func TestUserCellsFollowColumns(t *testing.T) {
	u := User{ID: Text("x"), FirstName: Text("F"), LastName: Text("L"), Age: Int(0), Email: Text("e")}
	assert.Equal(t, []string{"x", "F", "L", "0", "e"}, u.Cells())
	assert.Len(t, u.Cells(), len(Columns))
	assert.Equal(t, []string{"ID", "First Name", "Last Name", "Age", "Email"}, Columns)
}
