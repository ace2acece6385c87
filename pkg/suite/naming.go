package suite

import (
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrNoDomainName = errors.New("no domain name provided")

// NamingContext holds the naming variants every template is rendered with.
//
// Pascal is the raw input unchanged, so "ingredient" produces the type name
// "ingredient" rather than "Ingredient".
type NamingContext struct {
	Raw    string
	Pascal string
	Lower  string
}

func NewNamingContext(raw string) (*NamingContext, error) {
	if raw == "" {
		return nil, ErrNoDomainName
	}
	return &NamingContext{
		Raw:    raw,
		Pascal: raw,
		Lower:  lower(raw),
	}, nil
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
