package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
)

func ExampleNewSyslogFormatter() {
	f := formatter.NewSyslogFormatter(false)

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Logger:  "app.db",
		Message: "hello world",
	}

	out, _ := f.Format(entry)
	// No timestamp: syslog stamps the record itself.
	fmt.Println(strings.HasPrefix(string(out), "app.db[PID: "))
	fmt.Println(strings.HasSuffix(string(out), "] INFO: hello world\n"))
	// Output:
	// true
	// true
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Logger:  "app.http",
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	}

	out, _ := f.Format(entry)
	fmt.Println(strings.Contains(string(out), `"logger":"app.http"`))
	fmt.Println(strings.Contains(string(out), `"status":200`))
	// Output:
	// true
	// true
}
