package main

import (
	"github.com/NVIDIA/vercmp/pkg/cli"
)

func main() {
	cli.Execute()
}
