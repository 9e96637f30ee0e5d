// Package errors defines the application error taxonomy. Every error carries
// an HTTP status, a stable business code and a user-facing message, so the
// delivery layer can translate failures without inspecting internals.
package errors

import (
	"net/http"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types. Messages are the user-facing pt-BR strings; the
// business codes are what clients should branch on.
var (
	// Authentication errors. Unknown username and wrong password share one
	// error so callers cannot enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha inválidos",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username já existe",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	// ErrJWTConfiguration is a startup-time fault: the process cannot serve
	// auth at all. It must never be presented as a client error.
	ErrJWTConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"JWT_CONFIGURATION",
		"Erro interno ao processar a solicitação",
		"",
	)

	// Vehicle validation errors reported by the validation chain.
	ErrChassiTaken = NewBaseError(
		http.StatusBadRequest,
		"CHASSI_TAKEN",
		"Já existe um veículo cadastrado com este chassi",
		"",
	)

	ErrProprietarioMissing = NewBaseError(
		http.StatusBadRequest,
		"PROPRIETARIO_MISSING",
		"Proprietário não encontrado",
		"",
	)

	ErrChassiMismatch = NewBaseError(
		http.StatusBadRequest,
		"CHASSI_MISMATCH",
		"Chassi não corresponde",
		"",
	)

	ErrVeiculoNotFound = NewBaseError(
		http.StatusNotFound,
		"VEICULO_NOT_FOUND",
		"Caminhão não encontrado",
		"",
	)

	ErrVeiculoHasVendas = NewBaseError(
		http.StatusBadRequest,
		"VEICULO_HAS_VENDAS",
		"Não é possível deletar veículo com vendas registradas",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	// ErrStoreUnavailable covers transient store faults. Retryable by the
	// caller, never conflated with a validation failure.
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Banco de dados indisponível",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno ao processar a solicitação",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno ao processar a solicitação"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// StoreUnavailableError wraps a transient store fault while preserving the
// underlying cause. It matches the ErrStoreUnavailable sentinel through
// errors.Is, so callers can branch without losing the original error.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a transient store fault error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, "store unavailable").Error()
}

// Unwrap exposes the underlying store error.
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// Is matches the ErrStoreUnavailable sentinel.
func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return "Banco de dados indisponível"
}

// Details returns detailed error information
func (e *StoreUnavailableError) Details() string {
	return e.details
}
