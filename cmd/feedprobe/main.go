// feedprobe connects to a running feed gateway and streams its events to the
// console. Usage: go run ./cmd/feedprobe --url ws://localhost:8080/ws/market
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/ws/market", "gateway WebSocket URL")
	verbose := flag.Bool("verbose", false, "print full event JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, *url, nil)
	if err != nil {
		logger.Error("failed to connect", "url", *url, "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	logger.Info("connected", "url", *url)

	var frames atomic.Int64

	// Periodic ping plus a stats line.
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.TextMessage, []byte(`["ping"]`)); err != nil {
					return
				}
				logger.Info("stats", "frames_received", frames.Load())
			}
		}
	}()

	// Unblock the read loop on shutdown.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	logger.Info("streaming started - press Ctrl+C to stop")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("read failed", "error", err)
			}
			break
		}
		frames.Add(1)
		printEvent(data, *verbose)
	}

	logger.Info("shutdown complete")
}

// printEvent renders one ["event", payload] frame.
func printEvent(data []byte, verbose bool) {
	var frame []json.RawMessage
	if err := json.Unmarshal(data, &frame); err != nil || len(frame) == 0 {
		fmt.Printf("[RAW] %s\n", data)
		return
	}

	var event string
	if err := json.Unmarshal(frame[0], &event); err != nil {
		fmt.Printf("[RAW] %s\n", data)
		return
	}

	if len(frame) < 2 {
		fmt.Printf("[%s]\n", event)
		return
	}

	if verbose {
		pretty, err := json.MarshalIndent(json.RawMessage(frame[1]), "", "  ")
		if err != nil {
			pretty = frame[1]
		}
		fmt.Printf("[%s] %s\n", event, pretty)
		return
	}

	// Terse mode: element count for arrays, raw payload otherwise.
	var items []json.RawMessage
	if err := json.Unmarshal(frame[1], &items); err == nil {
		fmt.Printf("[%s] %d items\n", event, len(items))
		return
	}
	fmt.Printf("[%s] %s\n", event, frame[1])
}
