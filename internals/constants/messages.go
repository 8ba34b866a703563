package constants

import "fmt"

// Response messages shared across controllers and middlewares.
const (
	MsgNotFound        = "Not found"
	MsgNoDataProvided  = "No data provided"
	MsgInvalidBody     = "Invalid request body"
	MsgInvalidID       = "Invalid id"
	MsgValidationError = "validation_error"
	MsgInternalError   = "Internal server error"

	MsgMissingAuthHeader  = "Missing or invalid Authorization header"
	MsgTokenExpired       = "Token expired"
	MsgInvalidToken       = "Invalid token"
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountDisabled    = "Account is disabled"

	MsgTooManyRequests      = "Too many requests, please try again later."
	MsgTooManyLoginAttempts = "Too many login attempts, please try again in a minute."
)

const msgDeletedCourse = "successfully deleted course %d."

func DeletedCourse(id uint) string {
	return fmt.Sprintf(msgDeletedCourse, id)
}
