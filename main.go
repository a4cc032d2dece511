package main

import "rosterhue/cmd"

func main() {
	cmd.Execute()
}
