// Package webui provides the embedded playground page for the normlab web
// interface.
package webui

import _ "embed"

//go:embed static/index.html
var index []byte

// Index returns the playground page.
func Index() []byte {
	return index
}
