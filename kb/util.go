package kb

import (
	"encoding/json"
	"fmt"
	"log"
	"runtime"
)

// Fatal annotates err with the calling function when debug is enabled.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	if ViperGetBool("debug") {
		pc, _, line, ok := runtime.Caller(1)
		if ok {
			log.Printf("error[%s:%d]: %v\n", runtime.FuncForPC(pc).Name(), line, err)
		}
	}
	return err
}

func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}

func FormatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("failed formatting JSON: %v\n", err)
		return ""
	}
	return string(data)
}
