package main

import "steam-checker/cmd"

func main() {
	cmd.Execute()
}
