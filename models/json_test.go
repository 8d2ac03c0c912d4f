package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListValueAndScan(t *testing.T) {
	v, err := StringList{"fuzzy", "purple"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["fuzzy","purple"]`, v)

	v, err = StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	var out StringList
	assert.NoError(t, out.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, out)

	assert.NoError(t, out.Scan(nil))
	assert.Nil(t, out)

	assert.Error(t, out.Scan(42))
}

func TestSymptomListValueAndScan(t *testing.T) {
	list := SymptomList{{Name: "itching", Severity: 6}}
	v, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, `[{"name":"itching","severity":6}]`, v)

	var out SymptomList
	assert.NoError(t, out.Scan(`[{"name":"fatigue","severity":3}]`))
	assert.Equal(t, SymptomList{{Name: "fatigue", Severity: 3}}, out)

	assert.Error(t, out.Scan(3.14))
}
