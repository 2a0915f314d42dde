package set_user_enabled

import "context"

type UserService interface {
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
