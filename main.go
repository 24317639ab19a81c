package main

import "application-sync/cmd"

func main() {
	cmd.Execute()
}
