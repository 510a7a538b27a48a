package event

// Record is the untyped key/value shape every incoming event arrives as.
// Values carry whatever encoding/json produces: strings, float64 numbers,
// bools, nil, nested maps and slices.
type Record = map[string]interface{}

// Supported event type tags. The set is closed: dispatch is by exact match
// and no new types are added at runtime.
const (
	TypeUserSignup = "USER_SIGNUP"
	TypePayment    = "PAYMENT"
	TypeFileUpload = "FILE_UPLOAD"
)

var allowedTypes = map[string]bool{
	TypeUserSignup: true,
	TypePayment:    true,
	TypeFileUpload: true,
}

// TypeAllowed reports whether tag is one of the supported event types.
func TypeAllowed(tag string) bool {
	return allowedTypes[tag]
}
