package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pavel7004/goLinkerMap/internal/test"
	"github.com/Pavel7004/goLinkerMap/pkg/logger"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parser.log")

	log, closer, err := logger.New(logger.Config{Level: "info", File: path})
	test.DemandSuccess(t, err)

	log.Debug().Msg("not written")
	log.Info().Str("section", ".text").Msg("going through section")
	test.DemandSuccess(t, closer.Close())

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)

	s := string(data)
	test.ExpectSuccess(t, strings.Contains(s, `"section":".text"`))
	test.ExpectSuccess(t, strings.Contains(s, `"level":"info"`))
	test.ExpectFailure(t, strings.Contains(s, "not written"))
}

func TestNewConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parser.log")

	log, closer, err := logger.New(logger.Config{File: path, Console: true})
	test.DemandSuccess(t, err)

	log.Debug().Msg("placements")
	test.DemandSuccess(t, closer.Close())

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "placements"))
	test.ExpectFailure(t, strings.HasPrefix(string(data), "{"))
}

func TestNewStderr(t *testing.T) {
	_, closer, err := logger.New(logger.Config{File: logger.Stderr})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, closer.Close())
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := logger.New(logger.Config{Level: "loud", File: logger.Stderr})
	test.ExpectFailure(t, err)
}
