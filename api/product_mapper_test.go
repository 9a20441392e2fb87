package api_test

import (
	"encoding/json"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProductMapper", func() {
	var mapper api.ProductMapper

	BeforeEach(func() {
		mapper = api.NewProductMapper(marshal.UnmarshalFunc(json.Unmarshal))
	})

	Describe("AsNewProduct", func() {
		It("maps the payload to a store product", func() {
			product, err := mapper.AsNewProduct([]byte(`{
				"title": "  Mechanical Keyboard  ",
				"description": " Clicky. ",
				"price": 129.99,
				"image": "https://example.com/kb.png"
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(product).To(Equal(store.Product{
				Title:       "Mechanical Keyboard",
				Description: "Clicky.",
				Price:       129.99,
				Image:       "https://example.com/kb.png",
			}))
		})

		It("falls back to the placeholder image", func() {
			product, err := mapper.AsNewProduct([]byte(`{
				"title": "Keyboard",
				"description": "Clicky.",
				"price": 10
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(product.Image).To(Equal("https://via.placeholder.com/300x200"))
		})

		It("accepts a numeric string price", func() {
			product, err := mapper.AsNewProduct([]byte(`{
				"title": "Keyboard",
				"description": "Clicky.",
				"price": " 12.50 "
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(product.Price).To(Equal(12.5))
		})

		Context("when the body is empty", func() {
			It("returns ErrNoData", func() {
				_, err := mapper.AsNewProduct([]byte(`{}`))
				Expect(err).To(Equal(api.ErrNoData))
			})
		})

		Context("when required fields are blank", func() {
			It("reports them", func() {
				_, err := mapper.AsNewProduct([]byte(`{"title": "", "description": "", "price": 10}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"title":       "Title is required",
					"description": "Description is required",
				}))
			})
		})

		Context("when the price is missing or not positive", func() {
			It("requires a positive number", func() {
				_, err := mapper.AsNewProduct([]byte(`{"title": "Keyboard", "description": "Clicky."}`))
				validationErr, ok := err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(Equal(map[string]string{
					"price": "Price must be a positive number",
				}))

				_, err = mapper.AsNewProduct([]byte(`{"title": "Keyboard", "description": "Clicky.", "price": 0}`))
				validationErr, ok = err.(api.ValidationError)
				Expect(ok).To(BeTrue())
				Expect(validationErr.FieldErrors()).To(HaveKeyWithValue("price", "Price must be a positive number"))
			})
		})

		Context("when the price cannot be read as a number", func() {
			It("rejects it", func() {
				for _, body := range []string{
					`{"title": "Keyboard", "description": "Clicky.", "price": "not a number"}`,
					`{"title": "Keyboard", "description": "Clicky.", "price": null}`,
					`{"title": "Keyboard", "description": "Clicky.", "price": [1]}`,
				} {
					_, err := mapper.AsNewProduct([]byte(body))
					validationErr, ok := err.(api.ValidationError)
					Expect(ok).To(BeTrue())
					Expect(validationErr.FieldErrors()).To(HaveKeyWithValue("price", "Price must be a valid number"))
				}
			})
		})
	})

	Describe("AsProductUpdate", func() {
		It("maps only the fields present in the payload", func() {
			update, err := mapper.AsProductUpdate([]byte(`{"title": "  New Title  "}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(update.Title).NotTo(BeNil())
			Expect(*update.Title).To(Equal("New Title"))
			Expect(update.Description).To(BeNil())
			Expect(update.Price).To(BeNil())
			Expect(update.Image).To(BeNil())
		})

		It("maps a full payload", func() {
			update, err := mapper.AsProductUpdate([]byte(`{
				"title": "New Title",
				"description": " Updated. ",
				"price": "42",
				"image": "https://example.com/new.png"
			}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(*update.Title).To(Equal("New Title"))
			Expect(*update.Description).To(Equal("Updated."))
			Expect(*update.Price).To(Equal(42.0))
			Expect(*update.Image).To(Equal("https://example.com/new.png"))
		})

		Context("when the body is empty", func() {
			It("returns ErrNoData", func() {
				_, err := mapper.AsProductUpdate([]byte(`{}`))
				Expect(err).To(Equal(api.ErrNoData))
			})
		})

		Context("when the price is not a number", func() {
			It("returns ErrPriceInvalid", func() {
				_, err := mapper.AsProductUpdate([]byte(`{"price": "not a number"}`))
				Expect(err).To(Equal(api.ErrPriceInvalid))
			})
		})

		Context("when the price is not positive", func() {
			It("returns ErrPriceNotPositive", func() {
				_, err := mapper.AsProductUpdate([]byte(`{"price": -3}`))
				Expect(err).To(Equal(api.ErrPriceNotPositive))
			})
		})
	})
})
