package timeutil

import "time"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// ReceivedLayout renders inquiry receipt times the way the operator mailbox expects them.
const ReceivedLayout = "2006年01月02日 15:04"

// Tokyo is the zone inquiries are reported in. JST has no DST.
var Tokyo = time.FixedZone("JST", 9*60*60)

// FormatReceived formats t in Japan Standard Time.
func FormatReceived(t time.Time) string {
	return t.In(Tokyo).Format(ReceivedLayout)
}
