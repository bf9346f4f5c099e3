// Package guild runs reconcile passes on behalf of every entry point.
//
// The Service wraps the reconcile engine: Plan fetches the guild once and
// returns the plan with its snapshot, Execute applies it, and Apply does
// both. After each pass the service records a history row and, on success,
// archives the raw YAML. Both side records are optional and best effort.
//
// # HTTP API
//
//   - POST /guilds/:id/plan: returns the plan for the YAML body.
//   - POST /guilds/:id/apply: applies the YAML body (dry_run=true to skip execution).
//
// Invalid configurations answer 400, unknown guilds 404 and platform
// failures 502.
package guild
