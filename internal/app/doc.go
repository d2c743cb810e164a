// Package app wires configuration, the social graph, the loader and the
// shortest-path engine into the operations the CLI and the interactive
// shell expose.
package app
