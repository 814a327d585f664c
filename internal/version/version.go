// Package version holds the build version, overridden at link time:
//
//	go build -ldflags "-X genepic/internal/version.Version=v1.2.3" ./cmd/genepic
package version

var Version = "dev"
