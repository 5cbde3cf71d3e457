package main

import (
	"github.com/SportsToken/AthleteX-Dex-Subgraph/cli/athletex"
)

func main() {
	athletex.Main()
}
