package main

import "github.com/chibuka/leetcode-cli/cmd"

func main() {
	cmd.Execute()
}
