package handler

// Envelope is the uniform result shape returned by every code path.
// Invariant: Status == "ok" ⇔ Errors is empty ⇔ Data is non-nil.
type Envelope struct {
	Status  string      `json:"status"` // "ok" | "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data"`   // normalized output, nil on error
	Errors  []string    `json:"errors"` // empty on ok, never nil
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ok builds a success envelope around normalized data.
func ok(message string, data interface{}) Envelope {
	return Envelope{
		Status:  StatusOK,
		Message: message,
		Data:    data,
		Errors:  []string{},
	}
}

// reject builds the standard rejection envelope.
func reject(errs ...string) Envelope {
	return Envelope{
		Status:  StatusError,
		Message: "Event rejected",
		Data:    nil,
		Errors:  errs,
	}
}
