package main

import (
	"github.com/shadyltdcry-byte/classiklust/internal/cli"
)

func main() {
	cli.Execute()
}
