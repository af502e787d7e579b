package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"hotel-ledger/cmd/config"
	"hotel-ledger/internal/bridge"
)

func main() {
	log.SetFlags(0)

	replConfig, err := config.NewReplConfig()
	if err != nil {
		log.Println("checkout configuration:", err)
		return
	}

	handle, err := bridge.Open()
	if err != nil {
		log.Println("failed to create interpreter:", err)
		return
	}

	defer func() {
		if err = bridge.Close(handle); err != nil {
			log.Println("failed to release interpreter:", err)
		}
	}()

	if err = run(handle, replConfig, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Println(err)
	}
}

// run drives the read-eval-print loop: one command per line, regular
// output to out, error lines to errOut, stop once a command quits.
// Commands with empty output print nothing.
func run(handle bridge.Handle, cfg *config.Repl, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), cfg.MaxLineSize)

	for scanner.Scan() {
		result, err := bridge.Exec(handle, scanner.Text())
		if err != nil {
			return err
		}

		if result.Output != "" {
			w := out
			if result.IsError {
				w = errOut
			}

			_, _ = fmt.Fprintln(w, result.Output)
		}

		if result.IsQuitting {
			break
		}
	}

	return scanner.Err()
}
