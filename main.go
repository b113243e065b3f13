package main

import "guestlist/cmd"

func main() {
	cmd.Execute()
}
