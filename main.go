package main

import "github.com/alexiusacademia/golca/cmd"

func main() {
	cmd.Execute()
}
