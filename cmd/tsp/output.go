package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/steveyegge/timespan"
	"github.com/steveyegge/timespan/internal/ui"
)

func outputJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

// fail prints err and exits. Parse and resolve failures keep their
// kind in the output so scripts can tell "not a time expression" from
// "an impossible one".
func fail(err error) {
	var terr *timespan.Error
	if errors.As(err, &terr) {
		fmt.Fprintf(os.Stderr, "%s %s error: %s\n", ui.RenderFail(ui.IconFail), terr.Kind, terr.Msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.RenderFail(ui.IconFail), err)
	}
	os.Exit(1)
}
