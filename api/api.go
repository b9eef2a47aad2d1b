package api

import (
	"strings"
	"unicode"
)

type ErrorKey string

func (e ErrorKey) String() string {
	return string(e)
}

type ErrorCategory string

func (e ErrorCategory) String() string {
	return string(e)
}

// AppError holds information that is helpful in logging and reporting errors from the persistence and storage
// layers. The reconciliation core never produces one.
type AppError struct {
	Err error `json:"-"`

	// Don't change the value of these Key entries without making a corresponding change on the UI,
	// since these will be converted to human-friendly texts for presentation to the user
	Key ErrorKey `json:"key"`

	// detailed error message for debugging
	DebugMsg string `json:"debug_msg,omitempty"`

	Category ErrorCategory `json:"-"`

	Message string `json:"message"`

	// Extra data providing detail about the error condition, only provided in development mode
	Extras map[string]any `json:"extras,omitempty"`
}

func (a *AppError) Error() string {
	if a.Err == nil {
		return ""
	}
	return a.Err.Error()
}

func (a *AppError) Unwrap() error {
	return a.Err
}

// NewAppError returns a new AppError with its Err, Key and Category set
func NewAppError(err error, key ErrorKey, category ErrorCategory) *AppError {
	return &AppError{
		Err:      err,
		Key:      key,
		Category: category,
	}
}

// IsInternal reports whether the error is not caused by bad input
func (a *AppError) IsInternal() bool {
	switch a.Category {
	case CategoryInternal, CategoryDatabase, CategoryStorage:
		return true
	}
	return false
}

// LoadMessage assigns a readable message derived from the Key. Internal errors get a generic message.
func (a *AppError) LoadMessage() {
	key := a.Key

	if a.IsInternal() {
		key = ErrorGenericInternalServer
	}

	a.Message = keyToReadableString(key.String())
}

// keyToReadableString takes a key like ErrorSomethingSomethingOther and returns Something something other.
// Initial lowercase letters are lost and a run of capitals is kept together as one word.
func keyToReadableString(key string) string {
	runes := []rune(key)

	var words []string
	start := -1
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			continue
		}
		// a capital inside an acronym only starts a word if a lowercase letter follows it
		if i > 0 && unicode.IsUpper(runes[i-1]) && (i+1 == len(runes) || unicode.IsUpper(runes[i+1])) {
			continue
		}
		if start >= 0 {
			words = append(words, string(runes[start:i]))
		}
		start = i
	}
	if start < 0 {
		return key
	}
	words = append(words, string(runes[start:]))

	if len(words) > 1 && words[0] == "Error" {
		words = words[1:]
	}

	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)

	return strings.Join(words, " ")
}
