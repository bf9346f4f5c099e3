// Package archive keeps a copy of every configuration applied to a guild.
//
// Objects are stored as guilds/<guild-id>/<unix-nanos>.yaml in the storage
// bucket. The guild service saves after a successful pass; the reconcile
// command can replay an archived key with --from-archive.
package archive
