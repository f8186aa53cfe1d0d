// Package main implements the tabletop-api command: the HTTP server for the
// board game review platform plus its migration and seeding tools.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
