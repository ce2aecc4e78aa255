package views

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dcode-github/property_dashboard/models"
)

var validate = validator.New()

var fieldMessages = map[string]string{
	"required": "Champ obligatoire",
	"max":      "Valeur trop longue",
	"gte":      "Doit être au moins 1",
	"datetime": "Format attendu HH:MM",
	"url":      "URL invalide",
}

// validateProperty returns per-field messages keyed by struct field name,
// or nil when the draft is acceptable.
func validateProperty(p models.Property) map[string]string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "Valeur invalide"
		}
		out[fe.StructField()] = msg
	}
	return out
}
