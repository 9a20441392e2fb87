package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/Spidey0819/Tutorial-7/handlers"
	"github.com/Spidey0819/Tutorial-7/handlers/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Health", func() {
	var (
		request             *http.Request
		handler             *handlers.Health
		resp                *httptest.ResponseRecorder
		fakeDatabaseChecker *fakes.DatabaseChecker
		logger              *lagertest.TestLogger
	)

	BeforeEach(func() {
		var err error
		request, err = http.NewRequest("GET", "/api/health", nil)
		Expect(err).NotTo(HaveOccurred())

		fakeDatabaseChecker = &fakes.DatabaseChecker{}

		handler = handlers.NewHealth(fakeDatabaseChecker, "production")
		resp = httptest.NewRecorder()

		logger = lagertest.NewTestLogger("test-logger")
	})

	It("pings the database and reports itself healthy", func() {
		MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

		Expect(fakeDatabaseChecker.CheckDatabaseCallCount()).To(Equal(1))
		Expect(resp.Code).To(Equal(http.StatusOK))

		var body map[string]interface{}
		Expect(json.Unmarshal(resp.Body.Bytes(), &body)).To(Succeed())
		Expect(body["status"]).To(Equal("healthy"))
		Expect(body["message"]).To(Equal("API is running"))
		Expect(body["database"]).To(Equal("connected"))
		Expect(body["environment"]).To(Equal("production"))
		Expect(body["timestamp"]).NotTo(BeEmpty())
	})

	Context("when the server came up without a database", func() {
		BeforeEach(func() {
			handler = handlers.NewHealth(nil, "production")
		})

		It("reports itself degraded but still responds with a 200", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(resp.Code).To(Equal(http.StatusOK))

			var body map[string]interface{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &body)).To(Succeed())
			Expect(body["status"]).To(Equal("degraded"))
			Expect(body["database"]).To(Equal("unavailable"))
		})
	})

	Context("when the database ping fails", func() {
		BeforeEach(func() {
			fakeDatabaseChecker.CheckDatabaseReturns(errors.New("banana"))
		})

		It("responds with a 500 and hides the underlying error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(resp.Code).To(Equal(http.StatusInternalServerError))

			var body map[string]interface{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &body)).To(Succeed())
			Expect(body["status"]).To(Equal("unhealthy"))
			Expect(body["message"]).To(Equal("Database connection failed"))
			Expect(body["error"]).To(Equal("Connection error"))
			Expect(body).NotTo(HaveKey("database"))

			Expect(logger).To(gbytes.Say("check database failed"))
			Expect(logger).To(gbytes.Say("banana"))
		})
	})
})
