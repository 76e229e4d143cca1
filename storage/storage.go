// Package storage provides the persistent backends behind cartstore.Storage.
package storage

import "github.com/diyahomestylist/poppyandteal/cartstore"

// Backend is what every driver in this package provides.
type Backend interface {
	cartstore.Storage
	cartstore.ChangeFeed
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var (
	_ Backend = (*Memory)(nil)
	_ Backend = (*Bolt)(nil)
	_ Backend = (*Redis)(nil)
	_ Backend = (*Postgres)(nil)
)
