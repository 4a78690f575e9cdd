package main

import "cspr/cmd/cspr-client/cmd"

func main() {
	cmd.Execute()
}
