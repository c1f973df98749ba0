package main

import "github.com/MNE-FFF/Femalefoundersfeed/cmd"

func main() {
	cmd.Execute()
}
