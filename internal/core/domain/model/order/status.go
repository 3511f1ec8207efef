package order

import (
	"fmt"

	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is string-backed and
// persisted verbatim, matching the wire contract.
//
// There is no enforced transition graph: an update may set any valid status as
// long as the order's *current* status is not terminal. Delivered is the only
// terminal status; once entered it cannot be left through the guarded update
// path.
type Status string

const (
	// New is the initial status of a freshly placed order.
	New Status = "new"

	// Processing indicates the order is being prepared.
	Processing Status = "processing"

	// Delivered indicates the order reached the customer. Terminal: the order
	// aggregate becomes immutable for updates.
	Delivered Status = "delivered"
)

// getStatusDisplayNames returns the catalog of valid statuses mapped to their
// human-readable names. Statuses are data: extending the lifecycle means
// extending this map, not adding branches elsewhere.
func getStatusDisplayNames() map[Status]string {
	return map[Status]string{
		New:        "New",
		Processing: "Processing",
		Delivered:  "Delivered",
	}
}

// getImmutableStatuses returns the set of terminal statuses. An order whose
// current status is in this set rejects every guarded write.
func getImmutableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Delivered: {},
	}
}

// Validate checks that the status is a member of the status catalog.
func (s Status) Validate() error {
	if _, ok := getStatusDisplayNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// DisplayName returns the human-readable name of the status, or the raw value
// for statuses outside the catalog.
func (s Status) DisplayName() string {
	if name, ok := getStatusDisplayNames()[s]; ok {
		return name
	}
	return string(s)
}

// IsTerminal reports whether the status is in the immutable-status set.
func (s Status) IsTerminal() bool {
	_, ok := getImmutableStatuses()[s]
	return ok
}

// AssertMutable fails when the status is terminal. The error message is
// client-facing, e.g. "Delivered order can not be changed.".
func (s Status) AssertMutable() error {
	if s.IsTerminal() {
		return errs.NewObjectIsImmutableError(
			fmt.Sprintf("%s order can not be changed.", s.DisplayName()),
		)
	}
	return nil
}
