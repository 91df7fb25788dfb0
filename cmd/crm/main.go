// Command crm is the entry point for the CRM order-and-inventory
// engine: entity mutations, filtered queries, and the periodic jobs an
// external scheduler drives.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Operation failures (exit 1) are already rendered by the
		// command's formatter; everything else (bad flags, missing
		// database) only surfaces here.
		var xe *cli.ExitError
		rendered := errors.As(err, &xe) && xe.Code == cli.ExitFailure
		if !rendered {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
