package form

import (
	"fmt"

	"go.uber.org/zap"
)

// Messages shown to the user after a submission.
const (
	SuccessMessage = "メールが送信されました！確認メールをお送りしました。"
	failureFormat  = "送信中にエラーが発生しました: %s"
	unknownError   = "Unknown error"
)

// FailureMessage formats the notification for err.
func FailureMessage(err error) string {
	msg := unknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return fmt.Sprintf(failureFormat, msg)
}

// Notifier shows the outcome of a submission to the user.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// LogNotifier reports outcomes through a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info(msg, zap.String("outcome", "success"))
}

func (n *LogNotifier) Failure(msg string) {
	n.logger.Error(msg, zap.String("outcome", "failure"))
}
