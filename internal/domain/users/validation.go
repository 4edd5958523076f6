package users

import (
	"errors"
	"strings"

	"pet-adoption/internal/platform/apperr"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

const (
	msgNameRequired        = "O nome é obrigatório!"
	msgEmailRequired       = "O email é obrigatório!"
	msgEmailInvalid        = "Por favor, informe um email válido!"
	msgPhoneRequired       = "O telefone é obrigatório!"
	msgPasswordRequired    = "A senha é obrigatória!"
	msgConfirmRequired     = "A confirmação de senha é obrigatória!"
	msgPasswordMismatch    = "A senha e a confirmação precisam ser iguais!"
	msgPasswordTooLong     = "A senha deve ter no máximo 72 bytes!"
	msgEmailTaken          = "Por favor, utilize outro email!"
	msgInvalidCredentials  = "Usuário ou Senha inválido!"
	msgUserNotFound        = "Usuário não encontrado!"
	msgEditEmailTaken      = "Utilize outro email!"
	msgEditPasswordsDiffer = "As senhas não conferem!"
	msgEditForbidden       = "Você não pode editar outro usuário!"
	msgAccessDenied        = "Acesso negado!"
	msgInvalidJSON         = "JSON inválido!"
	msgInvalidForm         = "Formulário inválido!"
)

// field es un valor con sus reglas; se validan en orden y corta en el primero
// que falla, para devolver un único mensaje como esperan los clientes.
type field struct {
	value any
	rules []validationRule
}

type validationRule = validation.Rule

func validateInOrder(fields ...field) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			var internal validation.InternalError
			if errors.As(err, &internal) {
				return apperr.Internal(err)
			}
			return apperr.Validation(err.Error())
		}
	}
	return nil
}

func required(msg string) validation.Rule {
	return validation.Required.Error(msg)
}

func validEmail() validation.Rule {
	return is.Email.Error(msgEmailInvalid)
}

// bcrypt no acepta más de 72 bytes.
const maxPasswordBytes = 72

// maxBytes cuenta bytes, no runas (validation.Length cuenta runas).
func maxBytes(n int, msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > n {
			return errors.New(msg)
		}
		return nil
	})
}

func passwordLength() validation.Rule {
	return maxBytes(maxPasswordBytes, msgPasswordTooLong)
}

// normalizeEmail: la unicidad del email no distingue mayúsculas.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone lleva el teléfono a E.164 cuando se puede parsear con la
// región por defecto; si no, se guarda tal cual (trim).
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
