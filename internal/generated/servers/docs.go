// Package servers holds the echo server bindings generated from openapi.yaml.
// spec.go is written by hand and embeds the document itself.
//
// Regenerate after editing the document:
//
//go:generate go tool oapi-codegen -generate types -package servers -o types.gen.go openapi.yaml
//go:generate go tool oapi-codegen -generate echo-server -package servers -o server.gen.go openapi.yaml
package servers
