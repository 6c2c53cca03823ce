package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FileMissingError reports a record whose stored file is gone
type FileMissingError struct {
	Entity string
	Path   string
}

func (e *FileMissingError) Error() string {
	return fmt.Sprintf("%s file not found", e.Entity)
}

// Is enables errors.Is() comparison for FileMissingError
func (e *FileMissingError) Is(target error) bool {
	t, ok := target.(*FileMissingError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this plate"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an operation refused because of the entity's current state
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors groups several field-scoped validation errors
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Field+" - "+v.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Fields returns the messages keyed by field, in the shape API clients receive
func (e ValidationErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, v := range e {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// FieldNames returns the sorted list of fields with errors
func (e ValidationErrors) FieldNames() []string {
	seen := make(map[string]struct{}, len(e))
	names := make([]string, 0, len(e))
	for _, v := range e {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		seen[v.Field] = struct{}{}
		names = append(names, v.Field)
	}
	sort.Strings(names)
	return names
}

// OperationError is a persistence or storage failure after validation passed.
// Error() only exposes the operation; the cause stays reachable through Unwrap.
type OperationError struct {
	Op    string
	Cause error
}

func (e *OperationError) Error() string {
	return e.Op + " failed"
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// Is matches any OperationError with the same Op
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	return t.Op == "" || e.Op == t.Op
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrVehicleNotFound         = &NotFoundError{Entity: "vehicle"}
	ErrMaintenanceNotFound     = &NotFoundError{Entity: "maintenance"}
	ErrMaintenanceItemNotFound = &NotFoundError{Entity: "maintenance item"}
	ErrInvoiceNotFound         = &NotFoundError{Entity: "invoice"}
	ErrWorkshopNotFound        = &NotFoundError{Entity: "workshop"}
	ErrDeviceTokenNotFound     = &NotFoundError{Entity: "device token"}
)

// Missing payload errors
var (
	ErrInvoiceFileMissing = &FileMissingError{Entity: "invoice"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrVehicleExists     = &AlreadyExistsError{Entity: "vehicle", Context: "with this plate or renavam"}
	ErrVehicleLinkExists = &AlreadyExistsError{Entity: "vehicle link", Context: "for this user"}
)

// Operation Errors
var (
	ErrCreationFailed = &OperationError{Op: "creation"}
	ErrUpdateFailed   = &OperationError{Op: "update"}
	ErrDeletionFailed = &OperationError{Op: "deletion"}
	ErrUploadFailed   = &OperationError{Op: "upload"}
)

// Business Logic Errors
var (
	ErrWorkshopInUse           = &ConflictError{Message: "workshop has maintenances and cannot be deleted"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidInvoiceFile      = errors.New("invoice file must be a PDF within the size limit")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrTokenExpired       = &AuthenticationError{Message: "token has expired"}
	ErrInvalidOAuthState  = &AuthenticationError{Message: "invalid oauth state"}
	ErrNotVehicleOwner    = &AuthorizationError{Message: "user does not own this vehicle"}
	ErrNotWorkshopOwner   = &AuthorizationError{Message: "user does not own this workshop"}
)

// Configuration Errors
var (
	ErrSSONotConfigured   = &ConfigurationError{Message: "sso provider is not configured"}
	ErrStorageUnavailable = &ConfigurationError{Message: "file storage is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsFileMissing checks if an error is a FileMissingError
func IsFileMissing(err error) bool {
	var missingErr *FileMissingError
	return errors.As(err, &missingErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError or a ValidationErrors group
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsOperation checks if an error is an OperationError
func IsOperation(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsValidationErrors flattens a ValidationError or ValidationErrors into a group
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var group ValidationErrors
	if errors.As(err, &group) {
		return group, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewFileMissingError creates a FileMissingError for a stored path
func NewFileMissingError(entity, path string) error {
	return &FileMissingError{Entity: entity, Path: path}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewOperationError wraps a persistence or storage failure
func NewOperationError(op string, cause error) error {
	return &OperationError{Op: op, Cause: cause}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
