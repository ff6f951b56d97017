package main

import (
	"os"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
