package dto

import "github.com/transit-site/internal/pkg/errors"

func invalidField(field, rule string) error {
	return errors.ErrValidation.WithDetails(map[string]interface{}{field: rule})
}
