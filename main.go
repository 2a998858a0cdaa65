package main

import "github.com/kfreiman/fitscore/cmd"

func main() {
	cmd.Execute()
}
