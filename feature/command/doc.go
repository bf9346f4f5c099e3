// Package command exposes the reconciler as a chat command.
//
// A message of the form
//
//	~set ```yaml
//	server:
//	  name: My Server
//	  categories: ...
//	```
//
// applies the document to the guild the message was posted in. Without a
// yaml fence the whole text after the command name is read as YAML. The bot
// answers "Configuring..." before the pass and "Finished..." or the error
// after it. A per-guild Cooldown keeps passes on one guild from overlapping
// and spaces them out.
package command
