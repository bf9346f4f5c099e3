// Package history records every reconcile pass in MySQL through GORM.
//
// A Run row captures the guild, the entry point (command, api or cli), the
// outcome, the planned and executed action counts, the first error and the
// archive key of the applied configuration. Recording is best effort: a
// failing insert is logged by the caller and never fails the pass.
//
// The feature mounts GET /guilds/:id/history and is only enabled when the
// database connection succeeded at startup.
package history
