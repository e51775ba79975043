package main

import (
	"github.com/consensys/go-packed/pkg/cmd"
)

func main() {
	cmd.Execute()
}
