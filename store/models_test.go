package store_test

import (
	"github.com/Spidey0819/Tutorial-7/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("User", func() {
	Describe("ID", func() {
		It("returns the hex form of the mongo object id", func() {
			objectID, err := primitive.ObjectIDFromHex("64a1f0b2c3d4e5f601234567")
			Expect(err).NotTo(HaveOccurred())

			user := store.User{MongoID: objectID}
			Expect(user.ID()).To(Equal("64a1f0b2c3d4e5f601234567"))
		})
	})

	Describe("DisplayName", func() {
		It("returns the name when one is set", func() {
			user := store.User{Name: "Cleo", FullName: "Cleo Zhang"}
			Expect(user.DisplayName()).To(Equal("Cleo"))
		})

		It("falls back to the fullName from legacy registration", func() {
			user := store.User{FullName: "Cleo Zhang"}
			Expect(user.DisplayName()).To(Equal("Cleo Zhang"))
		})

		It("returns an empty string when neither is set", func() {
			Expect(store.User{}.DisplayName()).To(Equal(""))
		})
	})
})

var _ = Describe("ProductFilter", func() {
	Describe("CurrentPage", func() {
		It("clamps pages below one", func() {
			Expect(store.ProductFilter{Page: 0}.CurrentPage()).To(Equal(1))
			Expect(store.ProductFilter{Page: -3}.CurrentPage()).To(Equal(1))
		})

		It("keeps valid pages", func() {
			Expect(store.ProductFilter{Page: 7}.CurrentPage()).To(Equal(7))
		})
	})

	Describe("PageSize", func() {
		It("defaults out-of-range limits to ten", func() {
			Expect(store.ProductFilter{Limit: 0}.PageSize()).To(Equal(10))
			Expect(store.ProductFilter{Limit: -1}.PageSize()).To(Equal(10))
			Expect(store.ProductFilter{Limit: 101}.PageSize()).To(Equal(10))
		})

		It("keeps limits between one and one hundred", func() {
			Expect(store.ProductFilter{Limit: 1}.PageSize()).To(Equal(1))
			Expect(store.ProductFilter{Limit: 100}.PageSize()).To(Equal(100))
		})
	})

	Describe("Skip", func() {
		It("skips the documents of all previous pages", func() {
			filter := store.ProductFilter{Page: 3, Limit: 20}
			Expect(filter.Skip()).To(Equal(int64(40)))
		})

		It("is zero for the first page", func() {
			Expect(store.ProductFilter{Page: 1, Limit: 10}.Skip()).To(Equal(int64(0)))
		})

		It("uses the clamped page and limit", func() {
			filter := store.ProductFilter{Page: -2, Limit: 500}
			Expect(filter.Skip()).To(Equal(int64(0)))
		})
	})

	Describe("Query", func() {
		It("is empty without a keyword", func() {
			Expect(store.ProductFilter{}.Query()).To(Equal(bson.M{}))
		})

		It("builds a text search for the keyword", func() {
			filter := store.ProductFilter{Keyword: "laptop"}
			Expect(filter.Query()).To(Equal(bson.M{
				"$text": bson.M{"$search": "laptop"},
			}))
		})
	})

	Describe("SortDocument", func() {
		It("sorts ascending by default", func() {
			filter := store.ProductFilter{Sort: "price"}
			Expect(filter.SortDocument()).To(Equal(bson.D{{Key: "price", Value: 1}}))
		})

		It("treats a leading dash as descending", func() {
			filter := store.ProductFilter{Sort: "-createdAt"}
			Expect(filter.SortDocument()).To(Equal(bson.D{{Key: "createdAt", Value: -1}}))
		})

		It("returns nil for an empty sort expression", func() {
			Expect(store.ProductFilter{}.SortDocument()).To(BeNil())
		})
	})
})
