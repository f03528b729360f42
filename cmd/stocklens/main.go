package main

import (
	"github.com/stocklens/stocklens/pkg/cmd"
)

func main() {
	cmd.Execute()
}
