// Package redis provides helpers for connecting to a Redis server.
//
// The package wraps the go-redis client and adds a Connect function that
// retries the connection using the supplied configuration, plus a
// health-check helper for liveness and readiness probes.
//
// # Usage
//
//	cfg := redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  5 * time.Second,
//	    ConnectTimeout: 30 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// Sentinel errors such as ErrRedisNotReady wrap the underlying go-redis
// errors with errors.Join, so errors.Is works on both layers.
package redis
