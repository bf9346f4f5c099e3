// Package discord adapts the Discord REST API to the reconcile engine.
//
// Client implements reconcile.Platform on top of a Session, the subset of
// *discordgo.Session the application uses. Keeping the subset behind an
// interface lets tests substitute mocks.Session.
//
// # Error Mapping
//
//   - Unknown guild (10004), missing access (50001) or HTTP 404 on a guild
//     lookup become reconcile.ErrGuildNotFound.
//   - Every other failure is wrapped in *reconcile.PlatformError carrying the
//     operation and target; the discordgo error stays reachable via errors.As.
//
// # Timeouts
//
// Each call runs under its own context deadline (Config.TimeoutSeconds) and
// is bound to the request via discordgo.WithContext.
package discord
