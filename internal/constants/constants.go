package constants

const (
	AppName            = "daygrid"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daygrid/daygrid.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PageSize is the number of day columns in the paged grid view
	PageSize = 7

	// HistoryFallbackDays is how far back the history range reaches when no
	// logs exist to anchor it
	HistoryFallbackDays = 30

	// EnvConnectionString overrides the keyring-stored database connection string
	EnvConnectionString = "DAYGRID_DB_CONNECTION"
)
