package pkg

import (
	"encoding/json"
	"log"
	"os"
)

// Encode marshals v and panics on failure. Message types are plain structs so
// a failure means a programming error, not bad input.
func Encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Decode(data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Failed to decode message: %v", err)
	}
}

func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
