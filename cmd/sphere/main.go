package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"sphere-stl/internal/sphere"
)

func main() {
	level := 3
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: recursion level %q is not an integer\n", os.Args[1])
			os.Exit(1)
		}
		level = n
	} else if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: sphere [recursion-level]")
		os.Exit(1)
	}

	m, err := sphere.CreateUnitSphere(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	for _, v := range m.Vertices {
		fmt.Fprintf(out, "[% .8f % .8f % .8f]\n", v[0], v[1], v[2])
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
