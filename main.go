package main

import "github.com/KaramelBytes/colprofile/cmd"

func main() {
	cmd.Execute()
}
