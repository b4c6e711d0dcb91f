package main

import "github.com/techishthoughts/serbench/cmd"

func main() {
	cmd.Execute()
}
