package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eliseohh/topobot/internal/topology"
)

func main() {
	// Fixed cases first, then anything passed on the command line.
	run("filled triangle", "a-b-c")
	run("hollow triangle", "a-b, b-c, c-a")
	run("tetrahedron boundary", "a-b-c, a-b-d, a-c-d, b-c-d")
	run("malformed", "a--b")

	if len(os.Args) > 1 {
		run("argv", strings.Join(os.Args[1:], " "))
	}
}

func run(name, input string) {
	fmt.Printf("--- %s: %q ---\n", name, input)

	c, err := topology.ParseComplex(input)
	if err != nil {
		fmt.Printf("ERROR: %v\n\n", err)
		return
	}

	fmt.Println(topology.Analyze(c).Format())
	fmt.Println()
}
