// Package handler implements the Lambda-style event handler: one pure
// dispatcher that routes an untyped event record to a per-type validator
// and always returns a well-formed Envelope, never an error or panic.
package handler

import (
	"fmt"

	"github.com/hussainAl3mri/lambda-event-validator/internal/event"
)

// Handle validates, normalizes and transforms one event record.
//
// The event is accepted as interface{} on purpose: rejecting non-record
// input is part of the contract. The context record is accepted for
// forward compatibility (invocation metadata) and is ignored.
func Handle(evt interface{}, _ event.Record) Envelope {
	rec, isRecord := evt.(map[string]interface{})
	if !isRecord {
		return reject("Event must be a dictionary")
	}

	tag, present := rec["type"]
	if !present {
		return reject("Missing 'type' field")
	}

	name, _ := tag.(string)
	if !event.TypeAllowed(name) {
		return reject(fmt.Sprintf("Unsupported event type: %v", tag))
	}

	switch name {
	case event.TypeUserSignup:
		return handleUserSignup(rec)
	case event.TypePayment:
		return handlePayment(rec)
	case event.TypeFileUpload:
		return handleFileUpload(rec)
	}

	// Unreachable: the allowed set and the switch are the same closed set.
	return reject(fmt.Sprintf("Unsupported event type: %v", tag))
}
