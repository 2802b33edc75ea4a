package main

import (
	"github.com/motus-health/backend/cmd/app"
)

func main() {
	app.Run()
}
