// Package bridge exposes the interpreter lifecycle behind opaque handles,
// for hosts that cannot hold Go pointers across their boundary. The
// contract is three calls: Open creates an instance, Exec runs one command
// line against it, Close releases it exactly once.
//
// The host must guarantee that Exec calls on one handle never overlap and
// that a closed handle is never used again; the registry lock below only
// protects handle bookkeeping, not the interpreter itself.
package bridge

import (
	"fmt"
	"sync"

	"hotel-ledger/cmd/config"
	"hotel-ledger/internal/ledger"
	"hotel-ledger/internal/model"
	"hotel-ledger/internal/parser"
	"hotel-ledger/internal/processor"
	"hotel-ledger/internal/storage"
)

// Handle is an opaque reference to one interpreter instance.
type Handle int64

var (
	mu         sync.Mutex
	handles    = make(map[Handle]*processor.Processor)
	lastHandle Handle
)

// Open creates a fresh interpreter with an empty ledger and returns its
// handle. Every handle must eventually be released with Close.
func Open() (Handle, error) {
	parserConfig, err := config.NewParserConfig()
	if err != nil {
		return 0, err
	}

	processorConfig, err := config.NewProcessorConfig()
	if err != nil {
		return 0, err
	}

	l := ledger.New(
		storage.NewInMemoryStorage[model.HotelID, *model.Hotel](),
		storage.NewInMemoryStorage[model.Person, model.CustomerID](),
	)
	proc := processor.New(processorConfig, parser.NewParser(parserConfig), l)

	mu.Lock()
	defer mu.Unlock()

	lastHandle++
	handles[lastHandle] = proc

	return lastHandle, nil
}

// Exec runs one command line against the handle's interpreter.
func Exec(h Handle, line string) (processor.CommandResult, error) {
	mu.Lock()
	proc, ok := handles[h]
	mu.Unlock()

	if !ok {
		return processor.CommandResult{}, fmt.Errorf("unknown handle %d", h)
	}

	return proc.HandleCommand(line), nil
}

// Close releases the interpreter behind the handle, with everything it
// owns. Closing an unknown or already closed handle is an error.
func Close(h Handle) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := handles[h]; !ok {
		return fmt.Errorf("unknown handle %d", h)
	}

	delete(handles, h)
	return nil
}
