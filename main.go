package main

import "deliverus/cmd"

func main() {
	cmd.Execute()
}
