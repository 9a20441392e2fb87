package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/Spidey0819/Tutorial-7/handlers"
	"github.com/Spidey0819/Tutorial-7/handlers/fakes"
	"github.com/Spidey0819/Tutorial-7/store"
	storeFakes "github.com/Spidey0819/Tutorial-7/store/fakes"
	"go.mongodb.org/mongo-driver/bson/primitive"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UsersIndex", func() {
	var (
		request           *http.Request
		handler           *handlers.UsersIndex
		resp              *httptest.ResponseRecorder
		fakeUserStore     *storeFakes.UserStore
		fakeErrorResponse *fakes.ErrorResponse
		logger            *lagertest.TestLogger
		expectedLogger    lager.Logger
	)

	BeforeEach(func() {
		var err error
		request, err = http.NewRequest("GET", "/api/users", nil)
		Expect(err).NotTo(HaveOccurred())

		adaID, err := primitive.ObjectIDFromHex("64a1f0b2c3d4e5f601234567")
		Expect(err).NotTo(HaveOccurred())
		graceID, err := primitive.ObjectIDFromHex("64a1f0b2c3d4e5f601234568")
		Expect(err).NotTo(HaveOccurred())

		fakeUserStore = &storeFakes.UserStore{}
		fakeUserStore.AllReturns([]store.User{
			{
				MongoID:   adaID,
				Name:      "Ada",
				Email:     "ada@example.com",
				CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
				IsActive:  true,
			},
			{
				MongoID:   graceID,
				FullName:  "Grace Hopper",
				Email:     "grace@example.com",
				Phone:     "19025550111",
				CreatedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
				IsActive:  true,
			},
		}, nil)

		fakeErrorResponse = &fakes.ErrorResponse{}

		handler = handlers.NewUsersIndex(fakeUserStore, fakeErrorResponse)
		resp = httptest.NewRecorder()

		logger = lagertest.NewTestLogger("test-logger")

		expectedLogger = lager.NewLogger("test-logger").Session("users-index")

		testSink := lagertest.NewTestSink()
		expectedLogger.RegisterSink(testSink)
		expectedLogger.RegisterSink(lager.NewWriterSink(GinkgoWriter, lager.DEBUG))
	})

	It("lists the users without their password hashes", func() {
		MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

		Expect(fakeUserStore.AllCallCount()).To(Equal(1))

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body).To(MatchJSON(`{
			"message": "Users retrieved successfully",
			"users": [
				{
					"_id": "64a1f0b2c3d4e5f601234567",
					"name": "Ada",
					"email": "ada@example.com",
					"createdAt": "2024-03-01T12:30:00Z",
					"isActive": true
				},
				{
					"_id": "64a1f0b2c3d4e5f601234568",
					"fullName": "Grace Hopper",
					"email": "grace@example.com",
					"phone": "19025550111",
					"createdAt": "2024-03-02T08:00:00Z",
					"isActive": true
				}
			],
			"count": 2
		}`))
	})

	Context("when there are no users", func() {
		BeforeEach(func() {
			fakeUserStore.AllReturns([]store.User{}, nil)
		})

		It("responds with an empty list", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(resp.Body).To(MatchJSON(`{
				"message": "Users retrieved successfully",
				"users": [],
				"count": 0
			}`))
		})
	})

	Context("when the user store is not available", func() {
		BeforeEach(func() {
			handler = handlers.NewUsersIndex(nil, fakeErrorResponse)
		})

		It("calls the service unavailable error handler", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(fakeErrorResponse.ServiceUnavailableCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.ServiceUnavailableArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(MatchError("user store is not available"))
			Expect(description).To(Equal("Service temporarily unavailable"))
		})
	})

	Context("when listing the users fails", func() {
		BeforeEach(func() {
			fakeUserStore.AllReturns(nil, errors.New("banana"))
		})

		It("calls the internal server error handler", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(fakeErrorResponse.InternalServerErrorCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.InternalServerErrorArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(MatchError("banana"))
			Expect(description).To(Equal("Internal server error"))
		})
	})
})
