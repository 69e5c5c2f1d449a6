package apperrors

import "net/http"

// Factories for the errors the domain layer reports. Repositories return
// sentinel errors; services translate them through these.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound or a
// sentinel) into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports an optimistic-concurrency conflict: the record changed
// between read and write but still exists.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrAssetWrite reports a failed write to the asset store. It must be raised
// before any database commit that would reference the asset.
func ErrAssetWrite(err error) *AppError {
	return Wrap(err, CodeAssetWriteFailed, "assets", "Failed to store uploaded file", http.StatusInternalServerError)
}

// ErrDatabase wraps a store failure that is not a not-found or conflict.
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}
