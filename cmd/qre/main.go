// Command qre estimates the physical resources of fault-tolerant quantum
// algorithms from YAML job files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
