package main

import "github.com/dotcommander/bizlens/cmd"

func main() {
	cmd.Execute()
}
