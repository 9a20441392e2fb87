package api

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/Spidey0819/Tutorial-7/store"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var nonDigits = regexp.MustCompile(`\D`)

type userMapper struct {
	Unmarshaler marshal.Unmarshaler
}

func NewUserMapper(unmarshaler marshal.Unmarshaler) UserMapper {
	return &userMapper{
		Unmarshaler: unmarshaler,
	}
}

func (u *userMapper) AsAuthRegistration(bytes []byte) (store.User, error) {
	payload, err := asPayload(u.Unmarshaler, bytes)
	if err != nil {
		return store.User{}, err
	}

	fieldErrors := map[string]string{}

	name := strings.TrimSpace(stringField(payload, "name"))
	if name == "" {
		fieldErrors["name"] = "Name is required"
	} else if utf8.RuneCountInString(name) < 2 {
		fieldErrors["name"] = "Name must be at least 2 characters long"
	}

	email := normalizeEmail(stringField(payload, "email"))
	validateEmail(email, fieldErrors)

	password := stringField(payload, "password")
	validatePassword(password, fieldErrors)

	if len(fieldErrors) > 0 {
		return store.User{}, NewValidationError(fieldErrors)
	}

	return store.User{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil
}

func (u *userMapper) AsRegistration(bytes []byte) (store.User, error) {
	payload, err := asPayload(u.Unmarshaler, bytes)
	if err != nil {
		return store.User{}, err
	}

	fieldErrors := map[string]string{}

	fullName := strings.TrimSpace(stringField(payload, "fullName"))
	if fullName == "" {
		fieldErrors["fullName"] = "Full Name is required"
	} else if utf8.RuneCountInString(fullName) < 2 {
		fieldErrors["fullName"] = "Full Name must be at least 2 characters long"
	}

	email := normalizeEmail(stringField(payload, "email"))
	validateEmail(email, fieldErrors)

	phone := strings.TrimSpace(stringField(payload, "phone"))
	phoneDigits := nonDigits.ReplaceAllString(phone, "")
	if phone == "" {
		fieldErrors["phone"] = "Phone number is required"
	} else if len(phoneDigits) < 10 || len(phoneDigits) > 15 {
		fieldErrors["phone"] = "Phone must contain 10 to 15 digits only"
	}

	password := stringField(payload, "password")
	validatePassword(password, fieldErrors)

	confirmPassword := stringField(payload, "confirmPassword")
	if confirmPassword == "" {
		fieldErrors["confirmPassword"] = "Confirm Password is required"
	} else if password != confirmPassword {
		fieldErrors["confirmPassword"] = "Passwords do not match"
	}

	if len(fieldErrors) > 0 {
		return store.User{}, NewValidationError(fieldErrors)
	}

	return store.User{
		FullName: fullName,
		Email:    email,
		Phone:    phoneDigits,
		Password: password,
	}, nil
}

func (u *userMapper) AsAuthCredentials(bytes []byte) (Credentials, error) {
	payload, err := asPayload(u.Unmarshaler, bytes)
	if err != nil {
		return Credentials{}, err
	}

	fieldErrors := map[string]string{}

	email := normalizeEmail(stringField(payload, "email"))
	validateEmail(email, fieldErrors)

	password := stringField(payload, "password")
	validatePassword(password, fieldErrors)

	if len(fieldErrors) > 0 {
		return Credentials{}, NewValidationError(fieldErrors)
	}

	return Credentials{
		Email:    email,
		Password: password,
	}, nil
}

// AsCredentials parses the original login payload, which only checks
// that both fields are present.
func (u *userMapper) AsCredentials(bytes []byte) (Credentials, error) {
	payload := map[string]interface{}{}
	err := u.Unmarshaler.Unmarshal(bytes, &payload)
	if err != nil || len(payload) == 0 {
		return Credentials{}, ErrCredentialsRequired
	}

	email := normalizeEmail(stringField(payload, "email"))
	password := stringField(payload, "password")
	if email == "" || password == "" {
		return Credentials{}, ErrCredentialsRequired
	}

	return Credentials{
		Email:    email,
		Password: password,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string, fieldErrors map[string]string) {
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrors["email"] = "Must be a valid email format"
	}
}

func validatePassword(password string, fieldErrors map[string]string) {
	if password == "" {
		fieldErrors["password"] = "Password is required"
	} else if utf8.RuneCountInString(password) < 6 {
		fieldErrors["password"] = "Password must be at least 6 characters long"
	}
}
