// Package redis connects to Redis with bounded retries and exposes a
// readiness check.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// An empty Config.ConnectionURL means Redis is not configured; Connect then
// returns ErrEmptyConnectionURL so callers can fall back to in-process state.
package redis
