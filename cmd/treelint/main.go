// Command treelint runs static-analysis rules over parsed syntax trees.
package main

import "github.com/leapstack-labs/treelint/internal/cli"

func main() {
	cli.Execute()
}
