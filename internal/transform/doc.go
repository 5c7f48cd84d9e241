// Package transform walks a parsed markdown document tree and renders it
// into an ordered sequence of Block Kit blocks. The transformation is a pure
// function over the tree: it holds no state between calls, never fails, and
// drops node kinds it does not recognize.
package transform
