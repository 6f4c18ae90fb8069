package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (connection pool or an open
	// transaction) through request context.
	DBContextKey ContextKey = "db"
)
