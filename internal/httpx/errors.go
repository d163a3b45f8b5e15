package httpx

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageCode is the ad hoc machine-readable code a few endpoints attach to
// failures (recommendation reasons mostly). Most responses only carry message.
type MessageCode string

const (
	CodeInvalidJSON       MessageCode = "invalid_json"
	CodeValidationFailed  MessageCode = "validation_failed"
	CodeUnauthorized      MessageCode = "unauthorized"
	CodeForbidden         MessageCode = "forbidden"
	CodeNotFound          MessageCode = "not_found"
	CodeConflict          MessageCode = "conflict"
	CodeProfileIncomplete MessageCode = "profile_incomplete"
	CodeNoRecommendations MessageCode = "no_recommendations"
	CodeInternal          MessageCode = "internal_error"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ErrorBody is the wire shape of every failure response: a human-readable
// message surfaced verbatim to the user, plus the optional code.
type ErrorBody struct {
	Message     string       `json:"message"`
	MessageCode MessageCode  `json:"messageCode,omitempty"`
	Fields      []FieldError `json:"fields,omitempty"`
}

func ValidationDetails(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: "invalid", Param: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field: e.Field(),
			Rule:  e.Tag(),
			Param: e.Param(),
		})
	}
	return out
}

// ValidationMessage flattens field errors into the message string, since the
// client surfaces message verbatim and has no richer contract to lean on.
func ValidationMessage(fields []FieldError) string {
	if len(fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		p := f.Field + " " + f.Rule
		if f.Param != "" {
			p += "=" + f.Param
		}
		parts = append(parts, p)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
