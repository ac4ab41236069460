package main

import (
	"fmt"
	"os"

	"github.com/saveli-project/saveli/cmd/saveli"
	"github.com/saveli-project/saveli/pkg/style"
)

func main() {
	rootCmd := saveli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
