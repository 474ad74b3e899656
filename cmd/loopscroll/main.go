package main

import "github.com/CanonicalLtd/loopscroll/cli/cmd"

func main() {
	cmd.Execute()
}
