// Package notify wraps the host OS notification service.
package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a native desktop notification. Delivery is best-effort;
// callers log failures and move on.
type Notifier interface {
	Notify(title, body string) error
}

type beeepNotifier struct{}

func (beeepNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

func New() Notifier {
	return beeepNotifier{}
}
