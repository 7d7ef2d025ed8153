package main

import "github.com/rentlens/rentlens/cmd"

func main() {
	cmd.Execute()
}
