package services

// Notifier is the outbound notification contract consumed by the draw
// service. Sends are fire-and-forget per recipient: a failure is reported
// to the caller for counting and never retried here.
type Notifier interface {
	PublishNotification(templateID, recipient string, variables map[string]string) error
}
