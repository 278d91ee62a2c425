package healthendpoint_test

import (
	"database/sql"
	"strings"
	"time"

	. "github.com/contactform/contactapi/healthendpoint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubDatabaseStatus struct {
	stats sql.DBStats
}

func (s stubDatabaseStatus) GetDBStatus() sql.DBStats { return s.stats }

var _ = Describe("DatabaseStatusCollector", func() {
	var (
		collector prometheus.Collector
		dbStatus  = stubDatabaseStatus{stats: sql.DBStats{
			MaxOpenConnections: 100,
			OpenConnections:    50,
			InUse:              25,
			Idle:               25,
			WaitCount:          20,
			WaitDuration:       10 * time.Second,
			MaxIdleClosed:      10,
			MaxLifetimeClosed:  15,
		}}
	)

	BeforeEach(func() {
		collector = NewDatabaseStatusCollector("contactapi", "submission_server", "submission_db", dbStatus)
	})

	It("describes one gauge per pool statistic", func() {
		descChan := make(chan *prometheus.Desc, 10)
		collector.Describe(descChan)
		close(descChan)
		Expect(descChan).To(HaveLen(8))
	})

	It("reports the pool statistics", func() {
		expected := `
# HELP contactapi_submission_server_submission_db_in_use The number of connections currently in use
# TYPE contactapi_submission_server_submission_db_in_use gauge
contactapi_submission_server_submission_db_in_use 25
# HELP contactapi_submission_server_submission_db_max_open_connections Maximum number of open connections to the database
# TYPE contactapi_submission_server_submission_db_max_open_connections gauge
contactapi_submission_server_submission_db_max_open_connections 100
# HELP contactapi_submission_server_submission_db_wait_duration_seconds The total time blocked waiting for a new connection
# TYPE contactapi_submission_server_submission_db_wait_duration_seconds gauge
contactapi_submission_server_submission_db_wait_duration_seconds 10
`
		err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
			"contactapi_submission_server_submission_db_in_use",
			"contactapi_submission_server_submission_db_max_open_connections",
			"contactapi_submission_server_submission_db_wait_duration_seconds",
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("lints cleanly", func() {
		problems, err := testutil.CollectAndLint(collector)
		Expect(err).NotTo(HaveOccurred())
		Expect(problems).To(BeEmpty())
	})
})
