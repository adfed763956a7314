package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/level"
	"github.com/apex/log/handlers/logfmt"
	"github.com/apex/log/handlers/multi"
	"github.com/pkg/errors"

	"bacchus/winery/internal/database"
)

// Setup installs the process-wide handler: progress goes to console, errors
// are appended to the file at path. The returned closer releases the file.
func Setup(console io.Writer, path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open error log %s", path)
	}
	log.SetHandler(Handler(console, f))
	log.SetLevel(log.InfoLevel)
	return f, nil
}

// Handler splits entries by level. Anything below error is shown on the
// console; errors and above are written as logfmt lines to errorLog only.
func Handler(console, errorLog io.Writer) log.Handler {
	return multi.New(
		below(log.ErrorLevel, cli.New(console)),
		level.New(logfmt.New(errorLog), log.ErrorLevel),
	)
}

func below(lvl log.Level, h log.Handler) log.Handler {
	return log.HandlerFunc(func(e *log.Entry) error {
		if e.Level >= lvl {
			return nil
		}
		return h.HandleLog(e)
	})
}

// Failure reports err to the operator on w and records the full error
// chain, stack included, in the error log.
func Failure(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, database.Describe(err))
	log.WithField("kind", database.Classify(err).String()).Errorf("%+v", err)
}
