package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	CodeWindowClosed        = "WINDOW_CLOSED"
	CodeCapacityReached     = "CAPACITY_REACHED"
	CodeDuplicateHandle     = "DUPLICATE_HANDLE"
	CodeUnknownHandle       = "UNKNOWN_HANDLE"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeMissingReason       = "MISSING_REASON"
	CodeInvalidReason       = "INVALID_REASON"
	CodeBanned              = "BANNED"
	CodeGracePeriodExpired  = "GRACE_PERIOD_EXPIRED"
	CodeNotFound            = "NOT_FOUND"
	CodeBadRequest          = "BAD_REQUEST"
	CodeFeedbackNotApproved = "FEEDBACK_NOT_APPROVED"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
)

var (
	// ErrWindowClosed - регистрация сейчас закрыта
	ErrWindowClosed = &DomainError{
		Code:    CodeWindowClosed,
		Message: "registration is not open at this time",
	}

	// ErrCapacityReached - достигнут жесткий лимит игроков
	ErrCapacityReached = &DomainError{
		Code:    CodeCapacityReached,
		Message: "player limit reached",
	}

	// ErrDuplicateHandle - игрок с таким логином уже зарегистрирован
	ErrDuplicateHandle = &DomainError{
		Code:    CodeDuplicateHandle,
		Message: "player is already registered",
	}

	// ErrUnknownHandle - логин не найден в справочнике и имя не указано
	ErrUnknownHandle = &DomainError{
		Code:    CodeUnknownHandle,
		Message: "login not found in directory, a display name is required",
	}

	// ErrUnauthorized - у пользователя нет прав на операцию
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "you are not allowed to perform this action",
	}

	// ErrUnauthenticated - запрос без валидной сессии
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}

	// ErrMissingReason - не указана причина удаления
	ErrMissingReason = &DomainError{
		Code:    CodeMissingReason,
		Message: "a removal reason is required",
	}

	// ErrInvalidReason - причина не входит в допустимый набор
	ErrInvalidReason = &DomainError{
		Code:    CodeInvalidReason,
		Message: "removal reason is not allowed here",
	}

	// ErrBanned - у игрока активный бан
	ErrBanned = &DomainError{
		Code:    CodeBanned,
		Message: "player is banned from registering",
	}

	// ErrGracePeriodExpired - 15 минут после регистрации истекли
	ErrGracePeriodExpired = &DomainError{
		Code:    CodeGracePeriodExpired,
		Message: "the 15-minute grace period for this registration has passed",
	}

	// ErrFeedbackNotApproved - голосовать можно только за одобренные предложения
	ErrFeedbackNotApproved = &DomainError{
		Code:    CodeFeedbackNotApproved,
		Message: "cannot vote on unapproved feedback",
	}

	// ErrStoreUnavailable - база данных недоступна
	ErrStoreUnavailable = &DomainError{
		Code:    CodeStoreUnavailable,
		Message: "storage is unavailable",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку валидации входных данных
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// NewStoreError оборачивает ошибку хранилища, сохраняя исходную причину
func NewStoreError(err error) *DomainError {
	return &DomainError{
		Code:    CodeStoreUnavailable,
		Message: ErrStoreUnavailable.Message,
		Err:     err,
	}
}
