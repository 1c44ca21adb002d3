// Package tagscan parses embedded binary metadata tags out of media
// files. It ships one format out of the box, ID3v2 (v2.2/v2.3/v2.4),
// built on a pluggable format registry and dispatch engine so that
// additional formats can be registered without touching the core scan
// loop.
package tagscan
