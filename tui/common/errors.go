package common

import (
	"errors"

	"github.com/CrestNiraj12/termsocial/domain"
)

var errorText = map[error]string{
	domain.ErrMissingFields:    "Por favor, completa todos los campos",
	domain.ErrPasswordMismatch: "Las contraseñas no coinciden",
	domain.ErrEmptyPost:        "El post no puede estar vacío",
	domain.ErrEmptyComment:     "El comentario no puede estar vacío",
	domain.ErrPublishInFlight:  "Ya se está publicando",
	domain.ErrRefreshInFlight:  "Ya se están cargando posts",
	domain.ErrNoPostSelected:   "No hay ningún post seleccionado",
	domain.ErrPostNotFound:     "El post ya no existe",
}

// ErrorText returns the user-facing message for err.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	for target, text := range errorText {
		if errors.Is(err, target) {
			return text
		}
	}
	return "Error: " + err.Error()
}
