package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorageUnavailable indicates the backing store could not be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Kind is the stable, machine-readable classification of an application error.
type Kind string

const (
	KindInvalidEmployee     Kind = "invalid_employee"
	KindSameDayForbidden    Kind = "same_day_forbidden"
	KindPairConflict        Kind = "pair_conflict"
	KindCapacityExceeded    Kind = "capacity_exceeded"
	KindDuplicateEntry      Kind = "duplicate_entry"
	KindMissingHours        Kind = "missing_hours"
	KindEmptyUpdate         Kind = "empty_update"
	KindNotFound            Kind = "not_found"
	KindHasDependentRecords Kind = "has_dependent_records"
	KindValidationFailed    Kind = "validation_failed"
	KindStorageUnavailable  Kind = "storage_unavailable"
	KindInternal            Kind = "internal"
)

// AppError carries a Kind, a human readable message for the caller and an
// optional underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	// Cap is the effective daily cap for KindCapacityExceeded.
	Cap int
	// Dependents maps record kind to row count for KindHasDependentRecords.
	Dependents map[string]int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the package sentinels.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDuplicate:
		return e.Kind == KindDuplicateEntry
	case ErrStorageUnavailable:
		return e.Kind == KindStorageUnavailable
	case ErrValidation:
		return e.Kind.Status() == http.StatusBadRequest
	}
	return false
}

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindStorageUnavailable:
		return http.StatusServiceUnavailable
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// NewAppError creates an AppError of the given kind.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, falling back to sentinel matching and then KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindDuplicateEntry
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	case errors.Is(err, ErrValidation):
		return KindValidationFailed
	}
	return KindInternal
}

func InvalidEmployee() *AppError {
	return NewAppError(KindInvalidEmployee, "Geçersiz çalışan ID", nil)
}

func SameDayForbidden() *AppError {
	return NewAppError(KindSameDayForbidden, "Bugün için izin kullanımı yasaktır", nil)
}

// PairConflict reports that the two named employees may not be on leave the same day.
func PairConflict(firstName, secondName string) *AppError {
	return NewAppError(KindPairConflict, fmt.Sprintf("%s ve %s aynı gün izinli olamaz", firstName, secondName), nil)
}

func CapacityExceeded(maxSlots int) *AppError {
	e := NewAppError(KindCapacityExceeded, fmt.Sprintf("Bu gün için maksimum izin sayısına (%d) ulaşıldı", maxSlots), nil)
	e.Cap = maxSlots
	return e
}

func DuplicateEntry() *AppError {
	return NewAppError(KindDuplicateEntry, "Bu çalışan bu tarihte zaten izinli", nil)
}

func MissingHours() *AppError {
	return NewAppError(KindMissingHours, "Telafi izni için saat belirtilmeli", nil)
}

func EmptyUpdate() *AppError {
	return NewAppError(KindEmptyUpdate, "Güncellenecek alan belirtilmedi", nil)
}

// NotFound builds a KindNotFound error with a caller facing message.
func NotFound(message string) *AppError {
	return NewAppError(KindNotFound, message, ErrNotFound)
}

func HasDependentRecords(dependents map[string]int) *AppError {
	e := NewAppError(KindHasDependentRecords, "Bu temsilcinin kayıtları var. Önce kayıtları silin.", nil)
	e.Dependents = dependents
	return e
}

func ValidationFailed(err error) *AppError {
	return NewAppError(KindValidationFailed, "Geçersiz istek: "+err.Error(), err)
}

func StorageUnavailable(err error) *AppError {
	return NewAppError(KindStorageUnavailable, "Veritabanına şu anda ulaşılamıyor", err)
}
