// Package schedule builds the denormalized day and week documents consumed
// by the home display widget. It merges the recurring weekday rules, the
// club schedule and the pack schedule, derives the fixed four-slot club
// display, and applies date-keyed override fragments.
package schedule
