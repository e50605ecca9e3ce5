package main

import (
	"fmt"
	"os"

	"github.com/CrestNiraj12/termsocial/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termsocial: %v\n", err)
		os.Exit(1)
	}
}
