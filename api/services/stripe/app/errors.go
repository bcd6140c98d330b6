package app

import (
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
)

// ErrBadEvent marks a verified webhook event whose payload is unusable.
var ErrBadEvent = errors.New("bad event")

func badEvent(event stripe.Event, detail string) error {
	return errs.Invalid("decode", "webhook event", event.ID, fmt.Errorf("%w: %s", ErrBadEvent, detail))
}
