package endpoints

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm carries the fields of the sign-in form.
type LoginForm struct {
	Login     string `validate:"required,max=64"`
	Password  string `validate:"required"`
	ReturnURL string
}

// RegisterForm carries the fields of the registration form. The same
// form backs self-registration and the admin-driven variant.
type RegisterForm struct {
	Login           string `validate:"required,max=64"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

var fieldLabels = map[string]string{
	"Login":           "Username",
	"Password":        "Password",
	"ConfirmPassword": "Password confirmation",
}

// validationMessages turns validator errors into user-facing messages.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid input."}
	}
	var msgs []string
	for _, e := range verrs {
		label := fieldLabels[e.Field()]
		if label == "" {
			label = e.Field()
		}
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required.", label))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters.", label, e.Param()))
		case "eqfield":
			msgs = append(msgs, "The password and confirmation password do not match.")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid.", label))
		}
	}
	return msgs
}
