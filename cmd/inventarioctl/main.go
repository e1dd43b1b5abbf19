// inventarioctl tareas de operación: migraciones y datos de demostración.
//
// Uso:
//
//	inventarioctl migrate up|down|version
//	inventarioctl seed users|equipment
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
