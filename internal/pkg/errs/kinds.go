package errs

// Cross-cutting sentinels shared by the usecase layer. Domain packages declare
// their own sentinels and mark them with one of these where a category is needed.
var (
	ErrNotFound                = New("not found")
	ErrHasDependents           = New("entity has dependents")
	ErrIdempotencyConflict     = New("idempotency key reused with a different payload")
	ErrDomainValidation        = New("domain validation failed")
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrUnauthorized            = New("unauthorized")
)
