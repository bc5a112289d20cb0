package main

import "github.com/dvrz/dvrz/cmd"

func main() {
	cmd.Execute()
}
