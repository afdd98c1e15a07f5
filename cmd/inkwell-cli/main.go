package main

import "inkwell/cmd/inkwell-cli/cmd"

func main() {
	cmd.Execute()
}
