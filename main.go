package main

import "guild-manager/cmd"

func main() {
	cmd.Execute()
}
