//go:build js && wasm

package main

import (
	"syscall/js"

	"pinochle/replay"
)

func main() {
	js.Global().Set("__pinochleTape", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return mustJSON(tapeResponse{
				OK:    false,
				Error: &replay.TapeError{Round: -1, Reason: "invalid_request", Message: "missing request payload"},
			})
		}
		return mustJSON(handleTape(args[0].String()))
	}))

	select {}
}
