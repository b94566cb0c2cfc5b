// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go field names of the validated models.
const (
	// FieldUsername targets Credentials.Username.
	FieldUsername = "Username"

	// FieldPassword targets Credentials.Password.
	FieldPassword = "Password"

	// FieldUserID targets PageContent.UserID.
	FieldUserID = "UserID"

	// FieldPageNumber targets PageContent.PageNumber.
	FieldPageNumber = "PageNumber"
)

// fieldErrors maps a field to the error reported when any of its rules fail.
var fieldErrors = map[string]error{
	FieldUsername:   ErrInvalidUsername,
	FieldPassword:   ErrInvalidPassword,
	FieldUserID:     ErrInvalidUserID,
	FieldPageNumber: ErrInvalidPageNumber,
}

// JournalValidator implements the Validator interface for the journal input
// models: Credentials and PageContent. Both value and pointer forms are
// accepted.
type JournalValidator struct {
	validate *validator.Validate
}

// NewJournalValidator constructs a new JournalValidator
// and returns it as the Validator interface.
func NewJournalValidator() Validator {
	return &JournalValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.PageContent / *models.PageContent
//
// Returns ErrUnsupportedType if obj does not match any known model and
// ErrUnknownField for a field name that is not one of the Field constants.
// Only the first violation is reported.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateStruct(ctx, value, fields...)
	case *models.Credentials:
		return v.validateStruct(ctx, *value, fields...)

	case models.PageContent:
		return v.validateStruct(ctx, value, fields...)
	case *models.PageContent:
		return v.validateStruct(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if _, ok := fieldErrors[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return err
	}

	first := violations[0]
	sentinel, ok := fieldErrors[first.StructField()]
	if !ok {
		return err
	}
	return fmt.Errorf("%w: failed on %q", sentinel, first.Tag())
}
