package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/healthz
func main() {
	urlPtr := flag.String("url", "http://localhost:8080/healthz", "the health endpoint to poll")
	intervalPtr := flag.Duration("interval", 5*time.Second, "the time between two attempts")
	flag.Parse()

	log := zap.NewExample()
	defer log.Sync()

	var totalWaitTime time.Duration
	for {
		res, err := http.Get(*urlPtr)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				log.Info("service available", zap.String("url", *urlPtr))
				break
			}
			log.Info("service not ready", zap.Int("status", res.StatusCode))
		} else {
			log.Info("service not reachable", zap.Error(err))
		}
		totalWaitTime += *intervalPtr
		log.Info("waiting", zap.Duration("total", totalWaitTime))
		time.Sleep(*intervalPtr)
	}
}
