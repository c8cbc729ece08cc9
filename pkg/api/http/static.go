package http

import _ "embed"

// indexPage is the chat widget served at the root path, embedded so the
// binary is self-contained.
//
//go:embed index.html
var indexPage []byte
