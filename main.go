package main

import "github.com/AzielCF/az-access/cmd"

func main() {
	cmd.Execute()
}
