package is_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sr "github.com/Gobd/schemarules"
	"github.com/Gobd/schemarules/is"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  validation.Rule
		good  string
		bad   string
	}{
		{"Email", is.Email, "alice@example.com", "not-an-email"},
		{"URL", is.URL, "https://example.com/x", "://nope"},
		{"UUID", is.UUID, "e02fd0e4-00fd-090A-ca30-0d00a0038ba0", "e02fd0e4"},
		{"UUIDv4", is.UUIDv4, "57b73598-8764-4ad0-a76a-679bb6640eb1", "625e63f3-58f5-40b7-83a1-a72ad31acffb"},
		{"Alpha", is.Alpha, "abc", "ab1"},
		{"Alphanumeric", is.Alphanumeric, "abc123", "ab c"},
		{"Numeric", is.Numeric, "12345", "12a"},
		{"Hexadecimal", is.Hexadecimal, "deadBEEF", "xyz"},
		{"Base64", is.Base64, "aGVsbG8=", "not base64!"},
		{"JSON", is.JSON, `{"a":1}`, `{"a":`},
		{"IP", is.IP, "192.168.0.1", "999.0.0.1"},
		{"IPv4", is.IPv4, "10.0.0.1", "::1"},
		{"IPv6", is.IPv6, "2001:db8::1", "10.0.0.1"},
		{"Host", is.Host, "example.com", "exa mple"},
		{"Port", is.Port, "8080", "123456"},
		{"Semver", is.Semver, "1.2.3", "1.2"},
		{"LowerCase", is.LowerCase, "abc", "aBc"},
		{"UpperCase", is.UpperCase, "ABC", "AbC"},
		{"Latitude", is.Latitude, "45.0", "91.0"},
		{"Longitude", is.Longitude, "-73.9", "181.0"},
		{"CreditCard", is.CreditCard, "4111111111111111", "4111111111111112"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.rule.Validate(tt.good))
			assert.Error(t, tt.rule.Validate(tt.bad))
			// String rules skip absent values.
			assert.NoError(t, tt.rule.Validate(""))
			assert.NoError(t, tt.rule.Validate(nil))
		})
	}
}

func TestRulesDescribe(t *testing.T) {
	d, ok := is.Email.(sr.Describer)
	require.True(t, ok)

	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	require.NoError(t, d.Describe("email", openapi3.NewSchema(), ref))
	require.Equal(t, "must be a valid email address", ref.Value.Description)
}
