package orchestrator

import "fmt"

// Notice is an informational outcome. Notices are reported to the caller as
// results, never as errors.
type Notice string

const (
	NoticeNone                 Notice = ""
	NoticeAlreadyLoggedIn      Notice = "already_logged_in"
	NoticeIncorrectCredentials Notice = "incorrect_credentials"
	NoticeNoActiveSession      Notice = "no_active_session"
	NoticeCartEmpty            Notice = "cart_empty"
	NoticeNotOwned             Notice = "statement_not_owned"
)

// Result carries either a value or a notice with its console message.
type Result[T any] struct {
	Value   T
	Notice  Notice
	Message string
}

// OK reports whether the result carries a value rather than a notice.
func (r Result[T]) OK() bool { return r.Notice == NoticeNone }

func value[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func noticed[T any](n Notice, msg string) Result[T] {
	return Result[T]{Notice: n, Message: msg}
}

func noSession[T any]() Result[T] {
	return noticed[T](NoticeNoActiveSession, "No active session")
}

func welcomeMessage(username string) string { return fmt.Sprintf("Welcome back %s", username) }

func alreadyLoggedInMessage(username string) string {
	return fmt.Sprintf("Already logged in as %s", username)
}

func loggedOutMessage(username string) string { return fmt.Sprintf("User %s logged out", username) }
