// Package settings declares the desired-state document for a guild and how it
// is read from YAML.
//
// A document looks like:
//
//	server:
//	  name: My Server
//	  icon_url: https://cdn.example.com/icon.png
//	  categories:
//	    Text:
//	      description: General chatter
//	      channels:
//	        general:
//	          name: general
//	          topic: Say hi
//	          position: 0
//
// Categories and channels are keyed maps, so their order in the document is
// not meaningful. Optional fields are pointers: nil means "not set", which is
// different from the zero value (for example nsfw: false).
//
// Parse rejects malformed input with a *ValidationError before anything
// reaches the reconcile engine.
package settings
