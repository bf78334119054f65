// Package feed turns a syndication feed into an ordered list of episodes.
//
// Parsing is a single pass over structural XML events driven by a three-state
// machine: it only remembers whether the next text belongs to a title or a
// description. Every item end flushes the working episode. Titles are not
// copied from the feed; each title text event yields "episode #N" from a
// counter that runs across the whole document.
package feed
