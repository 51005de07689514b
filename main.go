package main

import "github.com/rolldo-dev/rolldo/cmd"

func main() {
	cmd.Execute()
}
