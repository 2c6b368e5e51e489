// Command borderhop finds shortest border-crossing routes between
// countries and hosts an interactive guessing game over the same graph.
//
// Usage:
//
//	borderhop search <source> <target> [paths]
//	borderhop play [--source X --target Y]
//	borderhop check
//
// Country arguments may use underscores in place of spaces, so
// South_Africa and "South Africa" name the same country.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
