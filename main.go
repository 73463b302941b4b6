package main

import "github.com/rozsasarpi/zandbak/cmd"

func main() {
	cmd.Execute()
}
