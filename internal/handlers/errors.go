package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/SscSPs/leave_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// toAppError classifies err, wrapping sentinel and unknown errors in an AppError.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return apperrors.NotFound("Kayıt bulunamadı")
	case apperrors.KindDuplicateEntry:
		return apperrors.NewAppError(apperrors.KindDuplicateEntry, "Kayıt zaten mevcut", err)
	case apperrors.KindStorageUnavailable:
		return apperrors.StorageUnavailable(err)
	case apperrors.KindValidationFailed:
		return apperrors.ValidationFailed(err)
	}
	return apperrors.NewAppError(apperrors.KindInternal, "Beklenmeyen bir hata oluştu", err)
}

// respondError writes the error body for err and logs it at a level matching its status.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromContext(c)
	appErr := toAppError(err)
	status := appErr.Kind.Status()

	if status >= 500 {
		logger.Error(msg, slog.String("error", err.Error()), slog.String("code", string(appErr.Kind)))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.String("code", string(appErr.Kind)))
	}

	body := dto.ErrorResponse{Detail: appErr.Message, Code: string(appErr.Kind)}
	if appErr.Kind == apperrors.KindCapacityExceeded {
		maxSlots := appErr.Cap
		body.Cap = &maxSlots
	}
	if len(appErr.Dependents) > 0 {
		body.Dependents = appErr.Dependents
	}
	c.JSON(status, body)
}

// respondBindError reports a request that failed binding or validation.
// Field rule violations are listed as "Field rule" pairs in the detail.
func respondBindError(c *gin.Context, err error, msg string) {
	appErr := apperrors.ValidationFailed(err)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			fields[i] = fe.Field() + " " + fe.Tag()
		}
		appErr.Message = "Geçersiz alanlar: " + strings.Join(fields, ", ")
	}
	respondError(c, appErr, msg)
}
