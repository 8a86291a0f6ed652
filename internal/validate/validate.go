package validate

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/5w1tchy/books-catalog/internal/models"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrBadURL       = errors.New("url must be an absolute URL")
)

var v = validator.New()

// Name trims and NFC-normalizes s so visually equal names compare equal, then
// requires something to be left.
func Name(s string) (string, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if err := v.Var(s, "required"); err != nil {
		return "", ErrNameRequired
	}
	return s, nil
}

// URL accepts absolute URLs only.
func URL(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if err := v.Var(s, "required,url"); err != nil {
		return nil, ErrBadURL
	}
	u, err := models.ParseURL(s)
	if err != nil {
		return nil, ErrBadURL
	}
	return u, nil
}
