package main

import "github.com/mmhamza1234/procurement/cmd"

func main() {
	cmd.Execute()
}
