package command

import (
	"context"
	"time"

	"github.com/flavioheleno/ledmatrix"
	"github.com/flavioheleno/ledmatrix/keypad"
)

// Polling defaults.
const (
	DefaultDebounce = 300 * time.Millisecond
	DefaultPoll     = 50 * time.Millisecond
)

// Scanner reports the key currently pressed, or keypad.NoKey.
type Scanner interface {
	Scan() (rune, error)
}

// Loop polls a Scanner and dispatches every key it reports.
type Loop struct {
	Scanner    Scanner
	Dispatcher *Dispatcher
	Debounce   time.Duration       // after a key press
	Poll       time.Duration       // after every scan
	Sleep      func(time.Duration) // nil selects time.Sleep
}

func (l *Loop) sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if l.Sleep != nil {
		l.Sleep(d)
		return
	}
	time.Sleep(d)
}

// PollOnce runs one scan cycle: read the keypad, run the command for a pressed key and
// wait out the debounce delay, then wait the poll delay.
// Command failures are logged and do not stop polling; scanner errors are returned.
func (l *Loop) PollOnce() error {
	key, err := l.Scanner.Scan()
	if err != nil {
		return err
	}
	if key != keypad.NoKey {
		logger := ledmatrix.Logger()
		logger.Info("key pressed", "key", string(key))
		if err := l.Dispatcher.Dispatch(key); err != nil {
			logger.Error("command failed", "key", string(key), "err", err)
		}
		l.sleep(l.Debounce)
	}
	l.sleep(l.Poll)
	return nil
}

// Run polls until ctx is done or the scanner fails. ctx is only checked between scan
// cycles; a running command always completes.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := l.PollOnce(); err != nil {
			return err
		}
	}
}
