package constants

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_CUSTOMER = "CUSTOMER"
)

const (
	ERROR_INPUT                = "Invalid input"
	INVALID_USERNAME           = "Unknown username"
	INVALID_PASSWORD           = "Wrong password"
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_ADMIN                  = "Admin permission required"
	NOT_LOGGED_IN              = "Please log in"
)

// Change-feed table names the notifier publishes on.
const (
	TABLE_MOVIES = "movies"
	TABLE_SHOWS  = "shows"
	TABLE_SEATS  = "seats"
	TABLE_SNACKS = "snacks"
	TABLE_ORDERS = "orders"
)

// Change-feed event kinds.
const (
	EVENT_INSERT = "INSERT"
	EVENT_UPDATE = "UPDATE"
	EVENT_DELETE = "DELETE"
)
