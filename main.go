package main

import "github.com/13m0n4de/easy-fs-extracter/cmd"

func main() {
	cmd.Execute()
}
