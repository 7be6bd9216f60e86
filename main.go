package main

import "github.com/synthguard/synthguard/cmd"

func main() {
	cmd.Execute()
}
