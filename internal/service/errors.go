package service

import "errors"

// Domain errors shared across services. Controllers map these onto HTTP
// status codes with errors.Is.
var (
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrScopeNotFound: the subject anchoring a generation request does not
	// exist. Checked before anything is sampled or written.
	ErrScopeNotFound = errors.New("subject not found")

	// ErrEmptyPool: the scope resolved but holds no questions. Mock exam
	// generation refuses to create an empty exam; challenge generation
	// tolerates an empty pool instead and never returns this.
	ErrEmptyPool = errors.New("no questions available in scope")

	// ErrDuplicateTitle: the title allocator ran out of retries while
	// racing another writer for the same base title.
	ErrDuplicateTitle = errors.New("could not allocate a unique title")

	// ErrDuplicateSubmission: a result already exists for this user and
	// exam/challenge.
	ErrDuplicateSubmission = errors.New("result already submitted")

	// ErrReferenced: the record is still referenced by child records and
	// cannot be deleted.
	ErrReferenced = errors.New("record is referenced by other records")

	// ErrAlreadyExists: unique field collision on create (e.g. subject name).
	ErrAlreadyExists = errors.New("record already exists")
)
