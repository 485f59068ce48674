package response

// Body is the JSON error envelope returned by middleware and the global
// error handler.
type Body struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Error(code, message string, details interface{}) Body {
	return Body{
		Code:    code,
		Message: message,
		Details: details,
	}
}
