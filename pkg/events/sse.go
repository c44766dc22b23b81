package events

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteSSE serializes one event as a server-sent record:
//
//	event: <type>
//	data: <json payload>
//
// followed by a blank line.
func WriteSSE(w io.Writer, event Event) error {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.Type, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
	return err
}
