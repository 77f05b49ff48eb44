// File: cmd/version.go
package cmd

// Version is the application version.
// Example: go build -ldflags "-X github.com/Irere123/gozilla/cmd.Version=1.0.0"
var Version = "1.0"
