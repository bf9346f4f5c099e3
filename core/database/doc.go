// Package database handles the optional MySQL connection.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration. The connection only backs the reconcile run
// history; the bot and the engine work without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("History disabled", zap.Error(err))
//	}
package database
