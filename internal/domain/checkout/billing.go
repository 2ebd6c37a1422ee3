package checkout

import (
	"fmt"
	"slices"
)

type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldAddress    Field = "address"
	FieldCity       Field = "city"
	FieldCountry    Field = "country"
	FieldPostalCode Field = "postalCode"
	FieldContact    Field = "contact"
)

var AvailableFields = []Field{FieldName, FieldEmail, FieldAddress, FieldCity, FieldCountry, FieldPostalCode, FieldContact}

func NewField(raw string) (Field, error) {
	if slices.Contains(AvailableFields, Field(raw)) {
		return Field(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

type CountryCode string

type Country struct {
	Code CountryCode
	Name string
}

// Countries is the fixed set offered by the billing form, in display order.
var Countries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "JP", Name: "Japan"},
	{Code: "PK", Name: "Pakistan"},
}

func (c CountryCode) Valid() bool {
	return slices.ContainsFunc(Countries, func(country Country) bool {
		return country.Code == c
	})
}

type BillingDetails struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	Country    CountryCode `json:"country"`
	PostalCode string      `json:"postalCode"`
	Contact    string      `json:"contact,omitempty"`
}

func (d BillingDetails) Value(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldAddress:
		return d.Address
	case FieldCity:
		return d.City
	case FieldCountry:
		return string(d.Country)
	case FieldPostalCode:
		return d.PostalCode
	case FieldContact:
		return d.Contact
	default:
		return ""
	}
}

// With returns a copy of d with a single field replaced. The receiver is never mutated.
func (d BillingDetails) With(f Field, value string) (BillingDetails, error) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldCountry:
		code := CountryCode(value)
		if value != "" && !code.Valid() {
			return BillingDetails{}, &ValidationError{Field: FieldCountry, Reason: "unsupported country"}
		}
		d.Country = code
	case FieldPostalCode:
		d.PostalCode = value
	case FieldContact:
		d.Contact = value
	default:
		return BillingDetails{}, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return d, nil
}

// Layout is the set of fields a form refuses to submit without.
type Layout []Field

var (
	LayoutFull    = Layout{FieldName, FieldEmail, FieldAddress, FieldCity, FieldCountry, FieldPostalCode}
	LayoutMinimal = Layout{FieldName, FieldEmail}
	LayoutPrefill = Layout{FieldName, FieldEmail}
)

func NewLayout(raw string) (Layout, error) {
	switch raw {
	case "full", "":
		return LayoutFull, nil
	case "minimal":
		return LayoutMinimal, nil
	default:
		return nil, fmt.Errorf("invalid form layout: %s", raw)
	}
}

func (l Layout) Has(f Field) bool {
	return slices.Contains(l, f)
}

// Validate reports the first required field that is empty.
func (l Layout) Validate(d BillingDetails) error {
	for _, f := range l {
		if d.Value(f) == "" {
			return &ValidationError{Field: f, Reason: "required"}
		}
	}
	return nil
}
