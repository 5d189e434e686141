// Package datetimepicker exposes the datetime Picker to HTML forms through a
// small net/http handler.
//
// A field named "starts_at" is submitted as the backing value plus one input
// per enabled part:
//
//	starts_at=2023-05-01 13:45:09
//	starts_at[date]=2023-05-01
//	starts_at[hours]=13
//	starts_at[minutes]=75
//	starts_at[seconds]=09
//
// POST requests run the picker change cycle (clamp, sync) over the submitted
// parts and answer with the canonical value as JSON. GET and HEAD requests
// return the snapshot for an optional value query parameter, falling back to
// the current time.
package datetimepicker
