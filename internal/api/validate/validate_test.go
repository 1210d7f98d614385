package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_Valid(t *testing.T) {
	require.NoError(t, Registration("Ann", "ann@x.com", "secret1"))
}

func TestRegistration_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		n, e, p string
	}{
		{"short name", "An", "ann@x.com", "secret1"},
		{"missing name", "", "ann@x.com", "secret1"},
		{"bad email", "Ann", "not-an-email", "secret1"},
		{"short password", "Ann", "ann@x.com", "12345"},
		{"everything empty", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Registration(tc.n, tc.e, tc.p)
			require.Error(t, err)

			var errs Errs
			require.ErrorAs(t, err, &errs)
			assert.NotEmpty(t, errs)
		})
	}
}

func TestLength_Bounds(t *testing.T) {
	assert.Nil(t, Length("password", "123456", 6, 100))
	assert.NotNil(t, Length("password", "12345", 6, 100))
}
