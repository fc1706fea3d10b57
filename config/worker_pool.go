package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultWorkerPoolSize = 120

type WorkerPoolConfig struct {
	Size int
}

func GetWorkerPoolConfig() (*WorkerPoolConfig, error) {
	size := defaultWorkerPoolSize
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer")
		}
		size = parsed
	}

	return &WorkerPoolConfig{
		Size: size,
	}, nil
}
