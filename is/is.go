// Package is provides string format rules backed by govalidator. Each rule
// implements [schemarules.Describer], so its message doubles as the schema
// description of the attribute it validates.
//
// Like every ozzo string rule, these skip nil and empty values; pair them
// with [schemarules.Required] when the attribute must be present.
package is

import (
	"github.com/asaskevich/govalidator"

	sr "github.com/Gobd/schemarules"
)

var (
	// Email checks if a string is a valid email address.
	Email = sr.NewStringRule(govalidator.IsEmail, "must be a valid email address")
	// URL checks if a string is a valid URL.
	URL = sr.NewStringRule(govalidator.IsURL, "must be a valid URL")
	// UUID checks if a string is a valid UUID.
	UUID = sr.NewStringRule(govalidator.IsUUID, "must be a valid UUID")
	// UUIDv4 checks if a string is a valid UUID version 4.
	UUIDv4 = sr.NewStringRule(govalidator.IsUUIDv4, "must be a valid UUID v4")
	// Alpha checks if a string contains English letters only.
	Alpha = sr.NewStringRule(govalidator.IsAlpha, "must contain English letters only")
	// Alphanumeric checks if a string contains English letters and digits only.
	Alphanumeric = sr.NewStringRule(govalidator.IsAlphanumeric, "must contain English letters and digits only")
	// Numeric checks if a string contains digits only.
	Numeric = sr.NewStringRule(govalidator.IsNumeric, "must contain digits only")
	// Hexadecimal checks if a string is a valid hexadecimal number.
	Hexadecimal = sr.NewStringRule(govalidator.IsHexadecimal, "must be a valid hexadecimal number")
	// ASCII checks if a string contains ASCII characters only.
	ASCII = sr.NewStringRule(govalidator.IsASCII, "must contain ASCII characters only")
	// PrintableASCII checks if a string contains printable ASCII characters only.
	PrintableASCII = sr.NewStringRule(govalidator.IsPrintableASCII, "must contain printable ASCII characters only")
	// Base64 checks if a string is encoded in base64.
	Base64 = sr.NewStringRule(govalidator.IsBase64, "must be encoded in base64")
	// JSON checks if a string is a valid JSON document.
	JSON = sr.NewStringRule(govalidator.IsJSON, "must be a valid JSON document")
	// IP checks if a string is a valid IPv4 or IPv6 address.
	IP = sr.NewStringRule(govalidator.IsIP, "must be a valid IP address")
	// IPv4 checks if a string is a valid IPv4 address.
	IPv4 = sr.NewStringRule(govalidator.IsIPv4, "must be a valid IPv4 address")
	// IPv6 checks if a string is a valid IPv6 address.
	IPv6 = sr.NewStringRule(govalidator.IsIPv6, "must be a valid IPv6 address")
	// Host checks if a string is a valid IP address or DNS name.
	Host = sr.NewStringRule(govalidator.IsHost, "must be a valid IP address or DNS name")
	// Port checks if a string is a valid port number.
	Port = sr.NewStringRule(govalidator.IsPort, "must be a valid port number")
	// Semver checks if a string is a valid semantic version.
	Semver = sr.NewStringRule(govalidator.IsSemver, "must be a valid semantic version")
	// LowerCase checks if a string contains lower case unicode letters only.
	LowerCase = sr.NewStringRule(govalidator.IsLowerCase, "must be in lower case")
	// UpperCase checks if a string contains upper case unicode letters only.
	UpperCase = sr.NewStringRule(govalidator.IsUpperCase, "must be in upper case")
	// Latitude checks if a string is a valid latitude.
	Latitude = sr.NewStringRule(govalidator.IsLatitude, "must be a valid latitude")
	// Longitude checks if a string is a valid longitude.
	Longitude = sr.NewStringRule(govalidator.IsLongitude, "must be a valid longitude")
	// CreditCard checks if a string is a valid credit card number.
	CreditCard = sr.NewStringRule(govalidator.IsCreditCard, "must be a valid credit card number")
)
