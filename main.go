package main

import "github.com/availarr/availarr/cmd"

func main() {
	cmd.Execute()
}
