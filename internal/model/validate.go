package model

import "github.com/deppfellow/luxury-living/internal/validation"

func validate(v interface{}) error {
	return validation.Struct(v)
}
