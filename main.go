package main

import "github.com/killallgit/feedcast/cmd"

func main() {
	cmd.Execute()
}
