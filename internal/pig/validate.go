package pig

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errEmptyPointName = errors.New("connection point names must not be empty")

// Validate checks the fields a part needs before it can enter a catalog.
func (p Part) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Length(1, 128)),
		validation.Field(&p.Category, validation.Required, validation.In(categoryValues()...)),
		validation.Field(&p.ColorOptions, validation.Each(validation.Required)),
		validation.Field(&p.ConnectionPoints, validation.By(pointNamesPresent)),
	)
}

func categoryValues() []interface{} {
	out := make([]interface{}, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, c)
	}
	return out
}

func pointNamesPresent(value interface{}) error {
	points, _ := value.(map[string]Point)
	for name := range points {
		if name == "" {
			return errEmptyPointName
		}
	}
	return nil
}
