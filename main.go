package main

import "stackcheck/cmd"

func main() {
	cmd.Execute()
}
