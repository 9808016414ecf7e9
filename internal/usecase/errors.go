package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

var ErrEmailTaken = &DomainError{
	Code:    "EMAIL_ALREADY_REGISTERED",
	Message: "email already registered",
}

var ErrLeadNotFound = &DomainError{
	Code:    "LEAD_NOT_FOUND",
	Message: "lead not found",
}

var ErrInvalidStatus = &DomainError{
	Code:    "INVALID_STATUS",
	Message: "status must be one of: new, contacted, qualified, lost",
}
