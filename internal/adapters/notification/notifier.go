// Package notification provides desktop notification delivery.
package notification

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/rolldo-dev/rolldo/internal/ports"
)

// DesktopNotifier implements ports.Notifier on top of the OS notification
// facilities. Delivery failures are swallowed; the countdown never depends
// on a notification landing.
type DesktopNotifier struct {
	enabled bool
}

// Ensure DesktopNotifier implements ports.Notifier.
var _ ports.Notifier = (*DesktopNotifier)(nil)

// New creates a notifier. When disabled, Notify is a no-op.
func New(enabled bool) *DesktopNotifier {
	return &DesktopNotifier{enabled: enabled}
}

// SetEnabled toggles delivery.
func (n *DesktopNotifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Notify displays a desktop notification. Critical urgency uses the alert
// channel, which also plays a sound on platforms that support it.
func (n *DesktopNotifier) Notify(title, message string, urgency ports.Urgency) {
	if !n.enabled {
		return
	}

	var err error
	if urgency == ports.UrgencyCritical {
		err = beeep.Alert(title, message, "")
	} else {
		err = beeep.Notify(title, message, "")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
	}
}
