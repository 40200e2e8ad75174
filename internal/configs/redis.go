package config

import (
	"fmt"

	"github.com/redis/rueidis"
)

func NewRedisClient(addr string) (rueidis.Client, error) {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	return redisClient, nil
}
