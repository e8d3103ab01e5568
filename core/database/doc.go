// Package database handles database connections.
//
// It wraps GORM and picks the dialector from the configured driver: MySQL for deployments,
// SQLite for local runs and tests. The connection is verified with a ping bounded by the
// configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
