package main

import "github.com/Haseeb-Arshad/chime/cmd/chime/cmd"

func main() {
	cmd.Execute()
}
