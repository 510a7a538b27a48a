package handler

import (
	"fmt"
	"strings"
)

// allowedPlans holds the normalized (lower-case) plan values.
var allowedPlans = map[string]bool{
	"free": true,
	"pro":  true,
	"edu":  true,
}

// SignupData is the normalized output of a USER_SIGNUP event.
type SignupData struct {
	UserID              int64  `json:"user_id"`
	Email               string `json:"email"`
	Plan                string `json:"plan"`
	WelcomeEmailSubject string `json:"welcome_email_subject"`
}

// handleUserSignup validates and normalizes a USER_SIGNUP event.
// Every field is type-checked independently; format and value checks run
// only on fields whose type check passed, and all failures are reported
// together.
func handleUserSignup(rec map[string]interface{}) Envelope {
	var errs []string

	userID, userIDOK := intValue(rec["user_id"])
	email, emailOK := stringValue(rec["email"])
	plan, planOK := stringValue(rec["plan"])

	if !userIDOK {
		errs = append(errs, "user_id must be an integer")
	}
	if !emailOK {
		errs = append(errs, "email must be a string")
	}
	if !planOK {
		errs = append(errs, "plan must be a string")
	}

	if emailOK && !isEmail(email) {
		errs = append(errs, "Invalid email format")
	}

	// Normalize before the membership check.
	if planOK {
		plan = strings.ToLower(plan)
		if !allowedPlans[plan] {
			errs = append(errs, "Invalid plan value")
		}
	}

	if len(errs) > 0 {
		return reject(errs...)
	}

	return ok("Signup processed", SignupData{
		UserID:              userID,
		Email:               strings.ToLower(email),
		Plan:                plan,
		WelcomeEmailSubject: fmt.Sprintf("Welcome to the %s plan!", plan),
	})
}
