// Package newsdigest collects newsletter issues from configured web sources,
// normalizes them into Markdown or plain text, and assembles a theme-grouped
// digest of their contents with a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, openai/).
package newsdigest
