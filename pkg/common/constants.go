package common

import "time"

const (
	PluginCacheTTL = 30 * time.Minute

	// TransactionCheckFile is relative to the project directory.
	TransactionCheckFile  = "/var/.httransaction"
	DefaultTransactionTTL = 10 * time.Minute

	MaintenanceFile = "/.maintenance"

	// PluginDir holds one directory per plugin code, relative to the project
	// directory.
	PluginDir = "/app/Plugin"

	DefaultAdminRoute = "/admin/"
	CSRFHeader        = "ECCUBE-CSRF-TOKEN"
)
