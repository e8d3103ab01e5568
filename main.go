package main

import (
	"booking-sync/cmd"

	// Embedded zone database so Europe/Paris resolves on minimal images.
	_ "time/tzdata"
)

func main() {
	cmd.Execute()
}
