// Package database handles the connection to the run history database.
//
// It wraps GORM and selects the dialect from configuration: a local SQLite file by
// default, or MySQL when runs from several machines should share one history.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
package database
