package database

import (
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "export_metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query/insert/update/delete and report it with the affected table
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	db.Callback().Query().Before("gorm:query").Register("export_metrics:select_before", markQueryStart)
	db.Callback().Query().After("gorm:query").Register("export_metrics:select_after", recordQuery("select", recorder))

	db.Callback().Create().Before("gorm:create").Register("export_metrics:insert_before", markQueryStart)
	db.Callback().Create().After("gorm:create").Register("export_metrics:insert_after", recordQuery("insert", recorder))

	db.Callback().Update().Before("gorm:update").Register("export_metrics:update_before", markQueryStart)
	db.Callback().Update().After("gorm:update").Register("export_metrics:update_after", recordQuery("update", recorder))

	db.Callback().Delete().Before("gorm:delete").Register("export_metrics:delete_before", markQueryStart)
	db.Callback().Delete().After("gorm:delete").Register("export_metrics:delete_after", recordQuery("delete", recorder))
}

func markQueryStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func recordQuery(operation string, recorder MetricsRecorder) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// StartDBStatsCollector starts periodic DB stats collection
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
