package store_test

import (
	"errors"

	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/Spidey0819/Tutorial-7/store/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserMetricsWrapper", func() {
	var (
		metricsWrapper    *store.UserMetricsWrapper
		user              store.User
		fakeMetricsSender *fakes.MetricsSender
		fakeStore         *fakes.UserStore
	)

	BeforeEach(func() {
		fakeStore = &fakes.UserStore{}
		fakeMetricsSender = &fakes.MetricsSender{}
		metricsWrapper = &store.UserMetricsWrapper{
			Store:         fakeStore,
			MetricsSender: fakeMetricsSender,
		}
		user = store.User{
			Name:     "Cleo",
			Email:    "cleo@example.com",
			Password: "hashed",
		}
	})

	Describe("Create", func() {
		It("calls Create on the Store", func() {
			fakeStore.CreateReturns(user, nil)
			createdUser, err := metricsWrapper.Create(user)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStore.CreateCallCount()).To(Equal(1))
			Expect(fakeStore.CreateArgsForCall(0)).To(Equal(user))
			Expect(createdUser).To(Equal(user))
		})

		It("emits a metric", func() {
			_, err := metricsWrapper.Create(user)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreUserCreateTime"))
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.CreateReturns(store.User{}, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, err := metricsWrapper.Create(user)
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreUserCreateError"))
			})
		})
	})

	Describe("ByEmail", func() {
		It("calls ByEmail on the Store", func() {
			fakeStore.ByEmailReturns(user, nil)
			foundUser, err := metricsWrapper.ByEmail("cleo@example.com")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStore.ByEmailCallCount()).To(Equal(1))
			Expect(fakeStore.ByEmailArgsForCall(0)).To(Equal("cleo@example.com"))
			Expect(foundUser).To(Equal(user))
		})

		It("emits a metric", func() {
			_, err := metricsWrapper.ByEmail("cleo@example.com")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreUserByEmailTime"))
		})

		Context("when no user matches", func() {
			BeforeEach(func() {
				fakeStore.ByEmailReturns(store.User{}, store.ErrNotFound)
			})

			It("does not count the miss as a store error", func() {
				_, err := metricsWrapper.ByEmail("nobody@example.com")
				Expect(err).To(Equal(store.ErrNotFound))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(0))
				Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			})
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.ByEmailReturns(store.User{}, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, err := metricsWrapper.ByEmail("cleo@example.com")
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreUserByEmailError"))
			})
		})
	})

	Describe("ByID", func() {
		It("calls ByID on the Store and emits a metric", func() {
			fakeStore.ByIDReturns(user, nil)
			foundUser, err := metricsWrapper.ByID("64a1f0b2c3d4e5f601234567")
			Expect(err).NotTo(HaveOccurred())
			Expect(foundUser).To(Equal(user))

			Expect(fakeStore.ByIDCallCount()).To(Equal(1))
			Expect(fakeStore.ByIDArgsForCall(0)).To(Equal("64a1f0b2c3d4e5f601234567"))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreUserByIDTime"))
		})
	})

	Describe("All", func() {
		It("calls All on the Store and emits a metric", func() {
			users := []store.User{user}
			fakeStore.AllReturns(users, nil)

			returnedUsers, err := metricsWrapper.All()
			Expect(err).NotTo(HaveOccurred())
			Expect(returnedUsers).To(Equal(users))

			Expect(fakeStore.AllCallCount()).To(Equal(1))
			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreUserAllTime"))
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.AllReturns(nil, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, err := metricsWrapper.All()
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreUserAllError"))
			})
		})
	})

	Describe("Count", func() {
		It("calls Count on the Store and emits a metric", func() {
			fakeStore.CountReturns(12, nil)

			count, err := metricsWrapper.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(12)))

			Expect(fakeStore.CountCallCount()).To(Equal(1))
			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreUserCountTime"))
		})
	})
})

var _ = Describe("ProductMetricsWrapper", func() {
	var (
		metricsWrapper    *store.ProductMetricsWrapper
		product           store.Product
		fakeMetricsSender *fakes.MetricsSender
		fakeStore         *fakes.ProductStore
	)

	BeforeEach(func() {
		fakeStore = &fakes.ProductStore{}
		fakeMetricsSender = &fakes.MetricsSender{}
		metricsWrapper = &store.ProductMetricsWrapper{
			Store:         fakeStore,
			MetricsSender: fakeMetricsSender,
		}
		product = store.Product{
			GUID:        "some-product-guid",
			Title:       "Mechanical Keyboard",
			Description: "tenkeyless",
			Price:       129.99,
		}
	})

	Describe("Create", func() {
		It("calls Create on the Store", func() {
			fakeStore.CreateReturns(product, nil)
			createdProduct, err := metricsWrapper.Create(product)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStore.CreateCallCount()).To(Equal(1))
			Expect(fakeStore.CreateArgsForCall(0)).To(Equal(product))
			Expect(createdProduct).To(Equal(product))
		})

		It("emits a metric", func() {
			_, err := metricsWrapper.Create(product)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductCreateTime"))
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.CreateReturns(store.Product{}, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, err := metricsWrapper.Create(product)
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreProductCreateError"))
			})
		})
	})

	Describe("ByGUID", func() {
		It("calls ByGUID on the Store and emits a metric", func() {
			fakeStore.ByGUIDReturns(product, nil)

			foundProduct, err := metricsWrapper.ByGUID("some-product-guid")
			Expect(err).NotTo(HaveOccurred())
			Expect(foundProduct).To(Equal(product))

			Expect(fakeStore.ByGUIDCallCount()).To(Equal(1))
			Expect(fakeStore.ByGUIDArgsForCall(0)).To(Equal("some-product-guid"))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductByGUIDTime"))
		})

		Context("when no product matches", func() {
			BeforeEach(func() {
				fakeStore.ByGUIDReturns(store.Product{}, store.ErrNotFound)
			})

			It("does not count the miss as a store error", func() {
				_, err := metricsWrapper.ByGUID("missing-guid")
				Expect(err).To(Equal(store.ErrNotFound))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Update", func() {
		It("calls Update on the Store and emits a metric", func() {
			fakeStore.UpdateReturns(product, nil)

			newTitle := "Ergonomic Keyboard"
			updatedProduct, err := metricsWrapper.Update("some-product-guid", store.ProductUpdate{Title: &newTitle})
			Expect(err).NotTo(HaveOccurred())
			Expect(updatedProduct).To(Equal(product))

			Expect(fakeStore.UpdateCallCount()).To(Equal(1))
			guid, update := fakeStore.UpdateArgsForCall(0)
			Expect(guid).To(Equal("some-product-guid"))
			Expect(*update.Title).To(Equal("Ergonomic Keyboard"))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductUpdateTime"))
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.UpdateReturns(store.Product{}, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, err := metricsWrapper.Update("some-product-guid", store.ProductUpdate{})
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreProductUpdateError"))
			})
		})
	})

	Describe("Delete", func() {
		It("calls Delete on the Store and emits a metric", func() {
			fakeStore.DeleteReturns(product, nil)

			deletedProduct, err := metricsWrapper.Delete("some-product-guid")
			Expect(err).NotTo(HaveOccurred())
			Expect(deletedProduct).To(Equal(product))

			Expect(fakeStore.DeleteCallCount()).To(Equal(1))
			Expect(fakeStore.DeleteArgsForCall(0)).To(Equal("some-product-guid"))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductDeleteTime"))
		})
	})

	Describe("List", func() {
		It("calls List on the Store and emits a metric", func() {
			products := []store.Product{product}
			fakeStore.ListReturns(products, 41, nil)

			filter := store.ProductFilter{Keyword: "keyboard", Page: 2, Limit: 20}
			returnedProducts, total, err := metricsWrapper.List(filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(returnedProducts).To(Equal(products))
			Expect(total).To(Equal(int64(41)))

			Expect(fakeStore.ListCallCount()).To(Equal(1))
			Expect(fakeStore.ListArgsForCall(0)).To(Equal(filter))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductListTime"))
		})

		Context("when there is an error", func() {
			BeforeEach(func() {
				fakeStore.ListReturns(nil, 0, errors.New("banana"))
			})

			It("emits an error metric", func() {
				_, _, err := metricsWrapper.List(store.ProductFilter{})
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("StoreProductListError"))
			})
		})
	})

	Describe("Count", func() {
		It("calls Count on the Store and emits a metric", func() {
			fakeStore.CountReturns(7, nil)

			count, err := metricsWrapper.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(7)))

			Expect(fakeStore.CountCallCount()).To(Equal(1))
			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("StoreProductCountTime"))
		})
	})
})
