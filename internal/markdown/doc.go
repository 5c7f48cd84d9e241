// Package markdown builds the goldmark parsing front-end that turns raw
// markdown source into the document tree consumed by the transform package.
// Parsing is the only stage here; rendering into Block Kit blocks lives in
// internal/transform.
package markdown
