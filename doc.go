// Package drivelog provides the types and functions to keep a rideshare
// driver's daily logbook. It is designed to be local-first: all state is one
// JSON document on disk, fully owned by the driver.
//
// The core functionalities include:
//   - Ledger Management: one income/expense record per calendar day with
//     upsert semantics, plus the vehicle maintenance history and the
//     configuration, persisted as a whole after every mutation.
//   - Virtual Reserve: a savings balance derived from each profitable day's
//     committed savings slice, minus the cost of completed maintenance.
//   - Period Aggregation: daily, ISO-weekly, monthly and all-time views over
//     the records, each recomputed on demand from the full ledger.
//   - Maintenance Monitoring: per-item urgency (ok, upcoming, overdue) and
//     reserve-affordability gauges against the current odometer.
//
// This package serves as the foundational logic for the `dlog` command-line
// tool.
package drivelog
