package remote

import "fmt"

// AuthError is returned by the auth endpoints: invalid credentials,
// rejected signups, transport failures.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth error: " + e.Reason
}

// ServiceError is any non-success answer from the hosted data service.
// The application treats it as opaque beyond status and message.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("remote service error (%d): %s", e.Status, e.Message)
}

// serviceErrorBody covers the error shapes the hosted service answers with.
type serviceErrorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
}

func (b serviceErrorBody) text() string {
	switch {
	case b.Message != "":
		return b.Message
	case b.ErrorDescription != "":
		return b.ErrorDescription
	case b.Msg != "":
		return b.Msg
	case b.ErrorCode != "":
		return b.ErrorCode
	}
	return ""
}
