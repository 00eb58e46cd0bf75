package containerizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	SignalSuccess = iota
	SignalError
)

// Signal is the one message the child sends the parent over the
// synchronizer pipe: setup finished, or setup failed and here is why.
type Signal struct {
	Type    int    `json:"type"`
	Message string `json:"message"`
}

type PipeSynchronizerError struct {
	Message string
}

func (err *PipeSynchronizerError) Error() string {
	return err.Message
}

// PipeSynchronizer relays the child's pre-exec setup outcome to the parent.
// The child holds the write end (inherited as an extra fd), the parent the
// read end. The parent relays the message; it never reinterprets it.
type PipeSynchronizer struct {
	Reader *os.File
	Writer io.Writer
}

func (ps *PipeSynchronizer) Wait(timeout time.Duration) error {
	signalQueue := make(chan Signal, 1)
	errorQueue := make(chan error, 1)

	go func() {
		var signal Signal

		decoder := json.NewDecoder(ps.Reader)
		if err := decoder.Decode(&signal); err != nil {
			errorQueue <- err
			return
		}

		signalQueue <- signal
	}()

	select {
	case signal := <-signalQueue:
		if signal.Type == SignalError {
			return &PipeSynchronizerError{Message: signal.Message}
		}
		return nil
	case err := <-errorQueue:
		return err
	case <-time.After(timeout):
		return errors.New("synchronizer wait timeout")
	}
}

func (ps *PipeSynchronizer) IsSignalError(err error) bool {
	var syncErr *PipeSynchronizerError
	return errors.As(err, &syncErr)
}

func (ps *PipeSynchronizer) SignalSuccess() error {
	return ps.sendSignal(Signal{Type: SignalSuccess})
}

func (ps *PipeSynchronizer) SignalError(err error) error {
	return ps.sendSignal(Signal{
		Type:    SignalError,
		Message: fmt.Sprintf("error: %s", err.Error()),
	})
}

func (ps *PipeSynchronizer) sendSignal(signal Signal) error {
	msg, err := json.Marshal(signal)
	if err != nil {
		return err
	}

	if _, err := ps.Writer.Write(msg); err != nil {
		return err
	}

	return nil
}
