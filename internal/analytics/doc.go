// Package analytics computes the platform report: time-windowed growth
// metrics and category/region distributions over a snapshot of businesses,
// users and bookings. Everything here is a pure function of its inputs;
// the caller supplies both the snapshot and the reference time.
package analytics
