package main

import "github.com/KaramelBytes/seatboard/cmd"

func main() {
	cmd.Execute()
}
