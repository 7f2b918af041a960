// Package leads validates and "submits" the audit request form.
//
// Submission is a stub: after a fixed delay it acknowledges the lead and
// forgets it. Nothing is stored or sent anywhere.
package leads
