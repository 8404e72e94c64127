package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the structure of the configuration and returns all validation errors.
// It does not check that default_list_name refers to a configured list; see ValidateDefaultList.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "", "")...)
	}

	validationErrors = append(validationErrors, c.validateLists()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// ValidateDefaultList checks that default_list_name refers to a configured list.
func (c *Config) ValidateDefaultList() error {
	if c.DefaultListName == "" {
		return ValidationErrors{{
			FieldPath: "default_list_name",
			Message:   "field is required",
		}}
	}

	if _, ok := c.Lists[c.DefaultListName]; !ok {
		return ValidationErrors{{
			FieldPath: "default_list_name",
			Message:   fmt.Sprintf("unknown list: %s", c.DefaultListName),
		}}
	}

	return nil
}

func (c *Config) validateLists() ValidationErrors {
	var validationErrors ValidationErrors

	for _, name := range c.ListNames() {
		list := c.Lists[name]
		fieldPrefix := "lists." + name

		if err := validate.Var(name, "list_name"); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fieldPrefix, name)...)
		}

		if list == nil || list.ID == nil {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  name,
				FieldPath: fieldPrefix + ".id",
				Message:   "field is required",
			})
			continue
		}

		if err := validate.Struct(list); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fieldPrefix, name)...)
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if field := fieldNamespace(e); field != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + field
				} else {
					fieldPath = field
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// fieldNamespace returns the TOML path of the failing field without the root struct name,
// e.g. "general.api_listen_addr" for Config.general.api_listen_addr.
func fieldNamespace(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}
