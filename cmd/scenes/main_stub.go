//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of scenes requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/scenes` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "`go run ./cmd/scene-soak` exercises the scene core without a window.")
	os.Exit(2)
}
