package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/webbmaffian/go-dict/mapfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	args := os.Args[1:]

	if len(args) != 1 {
		log.Println("Exactly one (1) argument expected, and this must be the path to the file.")
		return
	}

	path := args[0]

	ticker := time.NewTicker(time.Second)
	writer := uilive.New()

	length := writer.Newline()
	capacity := writer.Newline()
	buckets := writer.Newline()
	load := writer.Newline()
	keySize := writer.Newline()
	valSize := writer.Newline()
	fileSize := writer.Newline()

	// re-read the header every tick and render
	writer.Start()
	defer writer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := mapfile.Inspect(path)

			if err != nil {
				log.Println(err)
				return
			}

			fmt.Fprintf(length, "Length: %d\n", s.Length)
			fmt.Fprintf(capacity, "Capacity: %d\n", s.Capacity)
			fmt.Fprintf(buckets, "Buckets: %d\n", s.Buckets)
			fmt.Fprintf(load, "Load: %.3f\n", s.Load())
			fmt.Fprintf(keySize, "Key size: %d\n", s.KeySize)
			fmt.Fprintf(valSize, "Value size: %d\n", s.ValSize)
			fmt.Fprintf(fileSize, "File size: %d\n", s.FileSize)
		}
	}
}
