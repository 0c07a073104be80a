package main

import (
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application error: %v", err)
	}
}
