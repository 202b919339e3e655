package api

import "github.com/skillswap/skillswap-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid input",

		1100: store.ErrProfileTaken.Error(),
		1101: store.ErrProfileNotFound.Error(),
		1102: "account has not registered a profile",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrForbidden.Error(),
		1202: "invalid status transition",
		1203: store.ErrConflictRace.Error(),

		1300: store.ErrMatchNotFound.Error(),
		1301: store.ErrMatchExists.Error(),
		1302: store.ErrSessionNotFound.Error(),
		1303: store.ErrFeedbackExists.Error(),
		1304: store.ErrMatchNotCompleted.Error(),

		1400: store.ErrRatingNotFound.Error(),
		1401: store.ErrRatingExists.Error(),
		1402: store.ErrEditWindowExpired.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorProfileTaken         = errorJSON(1100)
	errorProfileNotFound      = errorJSON(1101)
	errorProfileNotRegistered = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)
	errorForbidden       = errorJSON(1201)
	errorConflictRace    = errorJSON(1203)

	errorMatchNotFound     = errorJSON(1300)
	errorMatchExists       = errorJSON(1301)
	errorSessionNotFound   = errorJSON(1302)
	errorFeedbackExists    = errorJSON(1303)
	errorMatchNotCompleted = errorJSON(1304)

	errorRatingNotFound    = errorJSON(1400)
	errorRatingExists      = errorJSON(1401)
	errorEditWindowExpired = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorInvalidTransition keeps the current and attempted statuses in
// the response for diagnostics.
func errorInvalidTransition(err *store.InvalidTransitionError) ErrorResponse {
	return ErrorResponse{
		Code:    1202,
		Message: err.Error(),
	}
}

// errorValidation surfaces the offending field and reason.
func errorValidation(err *store.ValidationError) ErrorResponse {
	return ErrorResponse{
		Code:    1012,
		Message: err.Error(),
	}
}
