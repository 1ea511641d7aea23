// Package wren renders configuration files for the C unit-test toolchain:
// a CMock YAML document and a gcovr cfg file, both driven by declarative
// field schemas.
package wren

// Version is the current wren release.
var Version = "0.3.0"
