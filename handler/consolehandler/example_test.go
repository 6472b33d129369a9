package consolehandler_test

import (
	"os"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler/consolehandler"
)

func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewSyslogFormatter(false),
	})
	defer h.Close()

	e := core.GetEntry()
	e.Level = core.InfoLevel
	e.Logger = "app.db"
	e.Message = "connected"
	_ = h.Handle(e)
}

// Create an async console handler with a custom buffer size.
func ExampleNewConsoleHandler_async() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Async:      true,
		BufferSize: 4096,
		Formatter:  formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()
}
