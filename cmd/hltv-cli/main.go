package main

import "hltv-crawler/cmd/hltv-cli/commands"

func main() {
	commands.Execute()
}
