package main

import "github.com/cgarz/WSMExtract/cmd"

func main() {
	cmd.Execute()
}
