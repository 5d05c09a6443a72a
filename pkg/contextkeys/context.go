package contextkeys

// Custom key type so our context values cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (connection pool or test transaction) is stored.
const DBContextKey = contextKey("db")
