// Command foodmodel is a command-line interface for the food-supply-shock
// resource allocation model.
package main

import (
	"fmt"
	"os"

	"github.com/mullach/allfed-integrated-model/internal/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
