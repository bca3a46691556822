// Package newsletter sends a dated digest to subscribers.
package newsletter

import (
	"fmt"
	"time"
)

// Clock tells the time.
type Clock interface {
	Now() time.Time
}

// Mailer delivers messages.
type Mailer interface {
	Ping() error
	// Send delivers one message. Bulk mail goes out at priority 0.
	//golem:default priority=0
	Send(to, subject string, priority int) error
}

// SendDigest mails the digest to every subscriber and returns how many
// deliveries succeeded. It stops at the first failed delivery.
func SendDigest(mailer Mailer, clock Clock, subscribers []string) (int, error) {
	err := mailer.Ping()
	if err != nil {
		return 0, fmt.Errorf("mailer unavailable: %w", err)
	}

	subject := "Digest " + clock.Now().Format(time.DateOnly)

	for sent, subscriber := range subscribers {
		err = mailer.Send(subscriber, subject, 0)
		if err != nil {
			return sent, fmt.Errorf("sending to %s: %w", subscriber, err)
		}
	}

	return len(subscribers), nil
}
