package api_test

import (
	"encoding/json"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserMapper", func() {
	var mapper api.UserMapper

	BeforeEach(func() {
		mapper = api.NewUserMapper(marshal.UnmarshalFunc(json.Unmarshal))
	})

	Describe("AsAuthRegistration", func() {
		It("maps the payload to a store user", func() {
			user, err := mapper.AsAuthRegistration([]byte(`{
				"name": "  Ada Lovelace  ",
				"email": " Ada@Example.COM ",
				"password": "secret1"
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(Equal(store.User{
				Name:     "Ada Lovelace",
				Email:    "ada@example.com",
				Password: "secret1",
			}))
		})

		Context("when the body is not valid json", func() {
			It("returns ErrNoData", func() {
				_, err := mapper.AsAuthRegistration([]byte(`not json`))
				Expect(err).To(Equal(api.ErrNoData))
			})
		})

		Context("when the body is an empty object", func() {
			It("returns ErrNoData", func() {
				_, err := mapper.AsAuthRegistration([]byte(`{}`))
				Expect(err).To(Equal(api.ErrNoData))
			})
		})

		Context("when required fields are blank", func() {
			It("collects an error for every field", func() {
				_, err := mapper.AsAuthRegistration([]byte(`{"name": "  "}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"name":     "Name is required",
					"email":    "Email is required",
					"password": "Password is required",
				}))
				Expect(validationErr.Error()).To(Equal("invalid fields: email, name, password"))
			})
		})

		Context("when fields have the wrong type", func() {
			It("reports them as missing", func() {
				_, err := mapper.AsAuthRegistration([]byte(`{"name": 5, "email": true, "password": 12}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(HaveKeyWithValue("name", "Name is required"))
				Expect(validationErr.FieldErrors()).To(HaveKeyWithValue("email", "Email is required"))
				Expect(validationErr.FieldErrors()).To(HaveKeyWithValue("password", "Password is required"))
			})
		})

		Context("when fields fail their length checks", func() {
			It("reports each one", func() {
				_, err := mapper.AsAuthRegistration([]byte(`{
					"name": "A",
					"email": "ada@example.com",
					"password": "short"
				}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"name":     "Name must be at least 2 characters long",
					"password": "Password must be at least 6 characters long",
				}))
			})
		})

		Context("when the email format is wrong", func() {
			It("rejects it", func() {
				_, err := mapper.AsAuthRegistration([]byte(`{
					"name": "Ada",
					"email": "nope@invalid",
					"password": "secret1"
				}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"email": "Must be a valid email format",
				}))
			})
		})
	})

	Describe("AsRegistration", func() {
		It("maps the payload and keeps only the phone digits", func() {
			user, err := mapper.AsRegistration([]byte(`{
				"fullName": " Grace Hopper ",
				"email": "GRACE@example.com",
				"phone": "+1 (902) 555-0199",
				"password": "secret1",
				"confirmPassword": "secret1"
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(Equal(store.User{
				FullName: "Grace Hopper",
				Email:    "grace@example.com",
				Phone:    "19025550199",
				Password: "secret1",
			}))
		})

		Context("when every field is missing", func() {
			It("collects all five errors", func() {
				_, err := mapper.AsRegistration([]byte(`{"fullName": ""}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"fullName":        "Full Name is required",
					"email":           "Email is required",
					"phone":           "Phone number is required",
					"password":        "Password is required",
					"confirmPassword": "Confirm Password is required",
				}))
			})
		})

		Context("when the phone has too few digits", func() {
			It("rejects it", func() {
				_, err := mapper.AsRegistration([]byte(`{
					"fullName": "Grace Hopper",
					"email": "grace@example.com",
					"phone": "555-0199",
					"password": "secret1",
					"confirmPassword": "secret1"
				}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"phone": "Phone must contain 10 to 15 digits only",
				}))
			})
		})

		Context("when the passwords do not match", func() {
			It("rejects the confirmation", func() {
				_, err := mapper.AsRegistration([]byte(`{
					"fullName": "Grace Hopper",
					"email": "grace@example.com",
					"phone": "9025550199",
					"password": "secret1",
					"confirmPassword": "secret2"
				}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"confirmPassword": "Passwords do not match",
				}))
			})
		})
	})

	Describe("AsAuthCredentials", func() {
		It("normalizes the email and keeps the password as sent", func() {
			creds, err := mapper.AsAuthCredentials([]byte(`{
				"email": " Ada@Example.COM ",
				"password": " secret1 "
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(creds).To(Equal(api.Credentials{
				Email:    "ada@example.com",
				Password: " secret1 ",
			}))
		})

		Context("when the body is empty", func() {
			It("returns ErrNoData", func() {
				_, err := mapper.AsAuthCredentials([]byte(``))
				Expect(err).To(Equal(api.ErrNoData))
			})
		})

		Context("when the password is too short", func() {
			It("returns a validation error", func() {
				_, err := mapper.AsAuthCredentials([]byte(`{
					"email": "ada@example.com",
					"password": "short"
				}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"password": "Password must be at least 6 characters long",
				}))
			})
		})
	})

	Describe("AsCredentials", func() {
		It("only requires both fields to be present", func() {
			creds, err := mapper.AsCredentials([]byte(`{
				"email": "ADA@example.com",
				"password": "x"
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(creds).To(Equal(api.Credentials{
				Email:    "ada@example.com",
				Password: "x",
			}))
		})

		Context("when either field is missing", func() {
			It("returns ErrCredentialsRequired", func() {
				_, err := mapper.AsCredentials([]byte(`{"email": "ada@example.com"}`))
				Expect(err).To(Equal(api.ErrCredentialsRequired))

				_, err = mapper.AsCredentials([]byte(`{"password": "secret1"}`))
				Expect(err).To(Equal(api.ErrCredentialsRequired))
			})
		})

		Context("when the body is not valid json", func() {
			It("returns ErrCredentialsRequired", func() {
				_, err := mapper.AsCredentials([]byte(`not json`))
				Expect(err).To(Equal(api.ErrCredentialsRequired))
			})
		})
	})
})
