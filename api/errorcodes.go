package api

const (
	CategoryDatabase = ErrorCategory("Database")
	CategoryUser     = ErrorCategory("User") // used for errors related to user input, validation, etc.
	CategoryNotFound = ErrorCategory("NotFound")
	CategoryStorage  = ErrorCategory("Storage")
	CategoryInternal = ErrorCategory("Internal") // used for internal errors, not related to bad user input
)

const (
	// General

	ErrorCreateFailure         = ErrorKey("ErrorCreateFailure")
	ErrorDestroyFailure        = ErrorKey("ErrorDestroyFailure")
	ErrorGenericInternalServer = ErrorKey("ErrorGenericInternalServer")
	ErrorForeignKeyViolation   = ErrorKey("ErrorForeignKeyViolation")
	ErrorNoRows                = ErrorKey("ErrorNoRows")
	ErrorQueryFailure          = ErrorKey("ErrorQueryFailure")
	ErrorSaveFailure           = ErrorKey("ErrorSaveFailure")
	ErrorUniqueKeyViolation    = ErrorKey("ErrorUniqueKeyViolation")
	ErrorUnknown               = ErrorKey("ErrorUnknown")
	ErrorUpdateFailure         = ErrorKey("ErrorUpdateFailure")
	ErrorValidation            = ErrorKey("ErrorValidation")

	// Photo
	ErrorStorePhotoBadContentType = ErrorKey("ErrorStorePhotoBadContentType")
	ErrorStorePhotoTooLarge       = ErrorKey("ErrorStorePhotoTooLarge")
	ErrorUnableToStoreFile        = ErrorKey("ErrorUnableToStoreFile")
	ErrorUnableToRemoveFile       = ErrorKey("ErrorUnableToRemoveFile")

	// Inspection
	ErrorInspectionNotFound     = ErrorKey("ErrorInspectionNotFound")
	ErrorInspectionInvalidInput = ErrorKey("ErrorInspectionInvalidInput")
	ErrorInspectionNoOpenDraft  = ErrorKey("ErrorInspectionNoOpenDraft")
)
