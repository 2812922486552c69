package domain

import "errors"

// Доменные ошибки трекера задач
var (
	// ErrUserExists возвращается при попытке зарегистрировать занятый email
	ErrUserExists = errors.New("user with this email already exists")

	// ErrInvalidEmail возвращается когда email не является корректным адресом
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyUsername возвращается когда имя пользователя пустое
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrUsernameTooLong возвращается когда имя пользователя длиннее MaxUsernameLength
	ErrUsernameTooLong = errors.New("username is too long")

	// ErrEmailTooLong возвращается когда email длиннее MaxEmailLength
	ErrEmailTooLong = errors.New("email is too long")

	// ErrNameTooLong возвращается когда название проекта длиннее MaxProjectNameLength
	ErrNameTooLong = errors.New("project name is too long")

	// ErrTitleTooLong возвращается когда заголовок задачи длиннее MaxTitleLength
	ErrTitleTooLong = errors.New("task title is too long")

	// ErrEmptyName возвращается когда название проекта пустое
	ErrEmptyName = errors.New("project name must not be empty")

	// ErrEmptyTitle возвращается когда заголовок задачи пустой
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrEmptyContent возвращается когда текст комментария пустой
	ErrEmptyContent = errors.New("comment content must not be empty")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус задачи
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrNotMember возвращается когда пользователь не состоит в проекте
	ErrNotMember = errors.New("user is not a member of the project")

	// ErrNoCandidate возвращается когда в проекте нет участника для автоназначения
	ErrNoCandidate = errors.New("no replacement candidate in project")

	// ErrForbidden возвращается когда у пользователя нет прав на операцию
	ErrForbidden = errors.New("operation not permitted")

	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrProjectNotFound возвращается когда проект не найден
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound возвращается когда задача не найдена
	ErrTaskNotFound = errors.New("task not found")

	// ErrCommentNotFound возвращается когда комментарий не найден
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeUserExists    ErrorCode = "USER_EXISTS"    // Email уже занят
	CodeInvalidStatus ErrorCode = "INVALID_STATUS" // Неизвестный статус задачи
	CodeValidation    ErrorCode = "BAD_REQUEST"    // Некорректные входные данные
	CodeNotMember     ErrorCode = "NOT_MEMBER"     // Пользователь не участник проекта
	CodeForbidden     ErrorCode = "FORBIDDEN"      // Недостаточно прав
	CodeNoCandidate   ErrorCode = "NO_CANDIDATE"   // Нет кандидатов для назначения
	CodeNotFound      ErrorCode = "NOT_FOUND"      // Ресурс не найден
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"   // Не авторизован
	CodeInternal      ErrorCode = "INTERNAL_ERROR" // Внутренняя ошибка
)

// IsValidationError сообщает, является ли ошибка ошибкой валидации входных данных
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrEmptyUsername),
		errors.Is(err, ErrEmptyName), errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrEmptyContent), errors.Is(err, ErrUsernameTooLong),
		errors.Is(err, ErrEmailTooLong), errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrTitleTooLong):
		return true
	default:
		return false
	}
}

// IsNotFound сообщает, означает ли ошибка отсутствие ресурса
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUserExists):
		return CodeUserExists
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case IsValidationError(err):
		return CodeValidation
	case errors.Is(err, ErrNotMember):
		return CodeNotMember
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNoCandidate):
		return CodeNoCandidate
	case IsNotFound(err):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}
