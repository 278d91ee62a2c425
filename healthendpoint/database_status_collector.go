package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type dbStat struct {
	desc  *prometheus.Desc
	value func(sql.DBStats) float64
}

type databaseStatusCollector struct {
	stats    []dbStat
	dbStatus DatabaseStatus
}

// NewDatabaseStatusCollector exposes the connection pool statistics of dbStatus
// as gauges named <namespace>_<subSystem>_<dbName>_<stat>.
func NewDatabaseStatusCollector(namespace, subSystem string, dbName string, dbStatus DatabaseStatus) prometheus.Collector {
	stat := func(name, help string, value func(sql.DBStats) float64) dbStat {
		return dbStat{
			desc:  prometheus.NewDesc(prometheus.BuildFQName(namespace, subSystem, dbName+"_"+name), help, nil, nil),
			value: value,
		}
	}
	return &databaseStatusCollector{
		dbStatus: dbStatus,
		stats: []dbStat{
			stat("max_open_connections", "Maximum number of open connections to the database",
				func(s sql.DBStats) float64 { return float64(s.MaxOpenConnections) }),
			stat("open_connections", "The number of established connections both in use and idle",
				func(s sql.DBStats) float64 { return float64(s.OpenConnections) }),
			stat("in_use", "The number of connections currently in use",
				func(s sql.DBStats) float64 { return float64(s.InUse) }),
			stat("idle", "The number of idle connections",
				func(s sql.DBStats) float64 { return float64(s.Idle) }),
			stat("wait_count", "The total number of connections waited for",
				func(s sql.DBStats) float64 { return float64(s.WaitCount) }),
			stat("wait_duration_seconds", "The total time blocked waiting for a new connection",
				func(s sql.DBStats) float64 { return s.WaitDuration.Seconds() }),
			stat("max_idle_closed", "The total number of connections closed due to SetMaxIdleConns",
				func(s sql.DBStats) float64 { return float64(s.MaxIdleClosed) }),
			stat("max_lifetime_closed", "The total number of connections closed due to SetConnMaxLifetime",
				func(s sql.DBStats) float64 { return float64(s.MaxLifetimeClosed) }),
		},
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, s := range c.stats {
		ch <- s.desc
	}
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	dbStats := c.dbStatus.GetDBStatus()
	for _, s := range c.stats {
		ch <- prometheus.MustNewConstMetric(s.desc, prometheus.GaugeValue, s.value(dbStats))
	}
}
