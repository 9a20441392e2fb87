package db_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/Spidey0819/Tutorial-7/config"
	"github.com/Spidey0819/Tutorial-7/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ConnectWithTimeout", func() {
	var (
		logger *lagertest.TestLogger
		conf   config.MongoConfig
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		conf = config.MongoConfig{URI: "mongodb://127.0.0.1:27017", Name: "registration_db", TimeoutSeconds: 1}
	})

	It("returns the connection when the connector succeeds in time", func() {
		expected := &db.Connection{}
		connector := func(config.MongoConfig) (*db.Connection, error) {
			return expected, nil
		}

		conn, err := db.ConnectWithTimeout(connector, conf, "tutorial7", "product-api", logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(conn).To(BeIdenticalTo(expected))
	})

	It("wraps the connector's error with the job prefix", func() {
		connector := func(config.MongoConfig) (*db.Connection, error) {
			return nil, errors.New("no mongo here")
		}

		_, err := db.ConnectWithTimeout(connector, conf, "tutorial7", "product-api", logger)
		Expect(err).To(MatchError("tutorial7.product-api: db connect: no mongo here"))
	})

	Context("when the connector outlives the deadline", func() {
		It("times out without stranding the dialing goroutine", func() {
			gate := make(chan struct{})
			connectorDone := make(chan struct{})
			connector := func(config.MongoConfig) (*db.Connection, error) {
				defer close(connectorDone)
				<-gate
				return &db.Connection{}, nil
			}

			_, err := db.ConnectWithTimeout(connector, conf, "tutorial7", "product-api", logger)
			Expect(err).To(MatchError("tutorial7.product-api: db connection timeout"))

			// the late dial must be able to finish its send and exit
			close(gate)
			Eventually(connectorDone).Should(BeClosed())
		})
	})
})
