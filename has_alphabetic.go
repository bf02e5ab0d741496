package schemarules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const creditCardNumberLength = 16

// HasAlphabetic returns a standard rule that checks if a string contains at
// least one alphabetic character. Empty strings pass.
func HasAlphabetic() validation.Rule {
	return hasAlphabetic{}
}

// NonCreditCardNumber returns a standard rule that rejects strings that
// look like bare credit card numbers.
func NonCreditCardNumber() validation.Rule {
	return hasAlphabetic{cardCheck: true}
}

type hasAlphabetic struct {
	cardCheck bool
}

func (r hasAlphabetic) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.cardCheck {
		appendDescription(ref, "must not be a credit card number")
	} else {
		appendDescription(ref, "must contain at least one alphabetic character")
	}
	return nil
}

var (
	nonAlphabetic = regexp.MustCompile(`[^[:alpha:]]`)
	nonDigit      = regexp.MustCompile(`\D`)
)

func (r hasAlphabetic) Validate(value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if nonAlphabetic.ReplaceAllString(v, "") != "" {
		return nil
	}
	if r.cardCheck {
		if len(nonDigit.ReplaceAllString(v, "")) != creditCardNumberLength {
			return nil
		}
		return fmt.Errorf("must not be a credit card number")
	}
	return fmt.Errorf("must contain at least one alphabetic character")
}
