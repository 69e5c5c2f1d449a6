package contextkeys

// Custom type so the key cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB (pool or
// transaction) is stored in gin.Context.
const DBContextKey = contextKey("db")
