// cmd/genepic/main.go
package main

import (
	"genepic/internal/app"
	"genepic/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
