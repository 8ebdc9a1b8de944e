package main

import "shopcatalog/cmd"

func main() {
	cmd.Execute()
}
