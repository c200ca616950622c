package main

import "pricescout/cmd"

func main() {
	cmd.Execute()
}
