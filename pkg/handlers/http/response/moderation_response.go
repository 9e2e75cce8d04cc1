package response

import "github.com/flagwise/flagwise/pkg/domain/flag"

// ModerationResponse lists one record per recognized flag type, in the
// enumeration's declared order.
type ModerationResponse struct {
	Flags []flag.Record `json:"flags"`
}
