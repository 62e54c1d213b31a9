// CratePack packs rectangular items into rectangular bins and reports the
// layout.
//
// Build:
//
//	go build -o cratepack ./cmd/cratepack
package main

import "github.com/piwi3910/CratePack/cmd/cratepack/commands"

func main() {
	commands.Execute()
}
