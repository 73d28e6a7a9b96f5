//go:build !(js && wasm)

package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Outside the browser the same request is read from stdin and the response
// printed to stdout.
func main() {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("[Replay] Failed to read request: %v", err)
	}
	fmt.Println(mustJSON(handleTape(string(raw))))
}
